package results

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/calculator-mcp/internal/arith"
	"github.com/averycrespi/calculator-mcp/internal/calculator"
)

func TestNewCalculatorState(t *testing.T) {
	tests := []struct {
		name     string
		state    calculator.State
		expected CalculatorState
	}{
		{
			name:  "Initial state",
			state: calculator.State{CurrentOperand: "0"},
			expected: CalculatorState{
				CurrentOperand: "0",
				Display:        calculator.Display{Current: "0"},
			},
		},
		{
			name: "Pending subtraction",
			state: calculator.State{
				CurrentOperand:    "7",
				PreviousOperand:   "7",
				Operation:         arith.OpSubtract,
				ShouldResetScreen: true,
			},
			expected: CalculatorState{
				CurrentOperand:    "7",
				PreviousOperand:   "7",
				Operation:         "-",
				OperationSymbol:   "−",
				ShouldResetScreen: true,
				Display:           calculator.Display{Current: "7", Previous: "7 −"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewCalculatorState(tt.state))
		})
	}
}

func TestStateToolResultJSON(t *testing.T) {
	result := StateToolResult{
		Message:   "ok",
		Arguments: StateToolArgs{Input: "5"},
		SessionID: "default",
		State:     NewCalculatorState(calculator.State{CurrentOperand: "5"}),
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "default", decoded["session_id"])

	args, ok := decoded["arguments"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"input": "5"}, args, "empty arguments are omitted")

	state, ok := decoded["state"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5", state["current_operand"])
}
