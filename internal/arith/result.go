package arith

// Result is either a finite number or the undefined marker produced by
// division by zero. The zero value is the number 0.
type Result struct {
	value     float64
	undefined bool
}

// Number wraps a numeric result
func Number(v float64) Result {
	return Result{value: v}
}

// Undefined returns the marker for a mathematically undefined result
func Undefined() Result {
	return Result{undefined: true}
}

// IsUndefined reports whether r is the undefined marker
func (r Result) IsUndefined() bool {
	return r.undefined
}

// Value returns the numeric value and false if r is undefined
func (r Result) Value() (float64, bool) {
	if r.undefined {
		return 0, false
	}
	return r.value, true
}
