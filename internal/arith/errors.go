package arith

import "errors"

var (
	// ErrInvalidOperand indicates an operand was NaN or infinite.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrOverflow indicates the result of an operation was not finite.
	ErrOverflow = errors.New("result overflow")
	// ErrNoOperation indicates Calculate was called without an operator.
	ErrNoOperation = errors.New("no operation specified")
	// ErrUnknownOperator indicates an operator tag outside the four known ones.
	ErrUnknownOperator = errors.New("unknown operation")
)

// ErrorKind returns a short stable name for an arithmetic error, or "" if err
// does not wrap one of this package's sentinels.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOperand):
		return "invalid_operand"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrNoOperation):
		return "no_operation"
	case errors.Is(err, ErrUnknownOperator):
		return "unknown_operator"
	}
	return ""
}
