package results

import (
	"github.com/averycrespi/calculator-mcp/internal/calculator"
)

// CalculatorState is the JSON form of a calculator state plus its display
type CalculatorState struct {
	CurrentOperand    string             `json:"current_operand"`
	PreviousOperand   string             `json:"previous_operand"`
	Operation         string             `json:"operation"`
	OperationSymbol   string             `json:"operation_symbol"`
	ShouldResetScreen bool               `json:"should_reset_screen"`
	Display           calculator.Display `json:"display"`
}

// NewCalculatorState converts a calculator state into its result form
func NewCalculatorState(s calculator.State) CalculatorState {
	return CalculatorState{
		CurrentOperand:    s.CurrentOperand,
		PreviousOperand:   s.PreviousOperand,
		Operation:         string(s.Operation),
		OperationSymbol:   calculator.OperationSymbol(s.Operation),
		ShouldResetScreen: s.ShouldResetScreen,
		Display:           calculator.NewDisplay(s),
	}
}

// StateToolResult represents the result of every tool that acts on a session
type StateToolResult struct {
	Message   string          `json:"message"`
	Arguments StateToolArgs   `json:"arguments"`
	SessionID string          `json:"session_id"`
	State     CalculatorState `json:"state"`
}

// StateToolArgs echoes the arguments of a session tool
type StateToolArgs struct {
	SessionID string `json:"session_id,omitempty"`
	Input     string `json:"input,omitempty"`
	Operator  string `json:"operator,omitempty"`
	Keys      string `json:"keys,omitempty"`
}
