package calculator

import "github.com/averycrespi/calculator-mcp/internal/arith"

var operationSymbols = map[arith.Operator]string{
	arith.OpAdd:      "+",
	arith.OpSubtract: "−",
	arith.OpMultiply: "×",
	arith.OpDivide:   "÷",
}

// OperationSymbol returns the display symbol for op. Unknown operators are
// shown as-is.
func OperationSymbol(op arith.Operator) string {
	if op == arith.OpNone {
		return ""
	}
	if symbol, ok := operationSymbols[op]; ok {
		return symbol
	}
	return string(op)
}

// Display holds the two lines a front end renders for a state
type Display struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
}

// NewDisplay renders the display lines for s
func NewDisplay(s State) Display {
	d := Display{Current: s.CurrentOperand}
	if s.Operation != arith.OpNone && s.PreviousOperand != "" {
		d.Previous = s.PreviousOperand + " " + OperationSymbol(s.Operation)
	}
	return d
}
