package calculator

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calculator-mcp/internal/arith"
)

// ActionKind identifies a user action
type ActionKind string

const (
	ActionAppendNumber    ActionKind = "append_number"
	ActionChooseOperation ActionKind = "choose_operation"
	ActionCalculate       ActionKind = "calculate"
	ActionClear           ActionKind = "clear"
	ActionDelete          ActionKind = "delete"
	ActionPercent         ActionKind = "percent"
)

// Action is a single user action. Payload carries the digit for
// ActionAppendNumber and the operator for ActionChooseOperation.
type Action struct {
	Kind    ActionKind `json:"kind"`
	Payload string     `json:"payload,omitempty"`
}

func (a Action) String() string {
	if a.Payload == "" {
		return string(a.Kind)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.Payload)
}

var keyActions = map[string]Action{
	"=":         {Kind: ActionCalculate},
	"c":         {Kind: ActionClear},
	"ac":        {Kind: ActionClear},
	"clear":     {Kind: ActionClear},
	"del":       {Kind: ActionDelete},
	"delete":    {Kind: ActionDelete},
	"backspace": {Kind: ActionDelete},
	"%":         {Kind: ActionPercent},
}

// ParseAction converts a key token such as "7", ".", "+", "=", "C", "DEL" or
// "%" into an Action.
func ParseAction(token string) (Action, error) {
	if isNumberToken(token) {
		return Action{Kind: ActionAppendNumber, Payload: token}, nil
	}
	if op, ok := arith.ParseOperator(token); ok {
		return Action{Kind: ActionChooseOperation, Payload: string(op)}, nil
	}
	if action, ok := keyActions[strings.ToLower(token)]; ok {
		return action, nil
	}
	return Action{}, fmt.Errorf("unrecognized key %q", token)
}

// ParseKeys splits a whitespace-separated key script into actions. A token of
// several digits expands into one append per digit.
func ParseKeys(script string) ([]Action, error) {
	var actions []Action
	for _, token := range strings.Fields(script) {
		if isNumberLiteral(token) {
			for _, r := range token {
				actions = append(actions, Action{Kind: ActionAppendNumber, Payload: string(r)})
			}
			continue
		}

		action, err := ParseAction(token)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func isNumberLiteral(token string) bool {
	if len(token) < 2 {
		return false
	}
	for i := 0; i < len(token); i++ {
		if !isNumberToken(token[i : i+1]) {
			return false
		}
	}
	return true
}

// Dispatch applies a to the calculator. It fails only for malformed actions.
func (c *Calculator) Dispatch(a Action) error {
	switch a.Kind {
	case ActionAppendNumber:
		if !isNumberToken(a.Payload) {
			return fmt.Errorf("invalid number token %q", a.Payload)
		}
		c.AppendNumber(a.Payload)
	case ActionChooseOperation:
		op, ok := arith.ParseOperator(a.Payload)
		if !ok {
			return fmt.Errorf("invalid operator %q", a.Payload)
		}
		c.ChooseOperation(op)
	case ActionCalculate:
		c.Compute()
	case ActionClear:
		c.Clear()
	case ActionDelete:
		c.DeleteLast()
	case ActionPercent:
		c.ApplyPercent()
	default:
		return fmt.Errorf("unknown action %q", a.Kind)
	}
	return nil
}
