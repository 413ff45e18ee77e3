package arith

// Operator represents a pending binary operation
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

var operatorAliases = map[string]Operator{
	"+":        OpAdd,
	"add":      OpAdd,
	"-":        OpSubtract,
	"−":        OpSubtract,
	"subtract": OpSubtract,
	"*":        OpMultiply,
	"×":        OpMultiply,
	"x":        OpMultiply,
	"multiply": OpMultiply,
	"/":        OpDivide,
	"÷":        OpDivide,
	"divide":   OpDivide,
}

// ParseOperator returns the Operator for a symbol, display symbol, or name.
// Unknown input is returned as an Operator tag with ok set to false.
func ParseOperator(s string) (Operator, bool) {
	op, ok := operatorAliases[s]
	if !ok {
		return Operator(s), false
	}
	return op, true
}

// IsKnown reports whether op is one of the four arithmetic operators
func (op Operator) IsKnown() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}
