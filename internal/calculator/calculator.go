// Package calculator implements a two-operand calculator with a single
// pending operation, driven by discrete user actions.
//
// A Calculator is not safe for concurrent use.
package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/averycrespi/calculator-mcp/internal/arith"
)

// ErrorDisplay is shown in place of the current operand after a failed computation
const ErrorDisplay = arith.UndefinedDisplay

// Config holds the limits fixed at construction
type Config struct {
	MaxDecimalPlaces int `json:"max_decimal_places" yaml:"max_decimal_places"`
	MaxDigits        int `json:"max_digits" yaml:"max_digits"`
}

// DefaultConfig returns the default calculator limits
func DefaultConfig() Config {
	return Config{
		MaxDecimalPlaces: arith.DefaultMaxDecimalPlaces,
		MaxDigits:        15,
	}
}

// Validate reports whether the limits are usable
func (c Config) Validate() error {
	if c.MaxDecimalPlaces < 0 {
		return errors.New("max_decimal_places must be >= 0")
	}
	if c.MaxDigits < 1 {
		return errors.New("max_digits must be >= 1")
	}
	return nil
}

// State is a snapshot of the calculator
type State struct {
	CurrentOperand    string         `json:"current_operand"`
	PreviousOperand   string         `json:"previous_operand"`
	Operation         arith.Operator `json:"operation"`
	ShouldResetScreen bool           `json:"should_reset_screen"`
}

func initialState() State {
	return State{CurrentOperand: "0"}
}

// Calculator holds the operands and pending operation of one session
type Calculator struct {
	state  State
	config Config
}

// New creates a calculator. Out-of-range limits fall back to their defaults.
func New(config Config) *Calculator {
	defaults := DefaultConfig()
	if config.MaxDecimalPlaces < 0 {
		config.MaxDecimalPlaces = defaults.MaxDecimalPlaces
	}
	if config.MaxDigits < 1 {
		config.MaxDigits = defaults.MaxDigits
	}

	return &Calculator{
		state:  initialState(),
		config: config,
	}
}

// Config returns the limits the calculator was built with
func (c *Calculator) Config() Config {
	return c.config
}

// State returns a copy of the current state
func (c *Calculator) State() State {
	return c.state
}

// AppendNumber appends a digit or a decimal point to the current operand.
// Tokens other than a single digit or "." are ignored.
func (c *Calculator) AppendNumber(token string) {
	if !isNumberToken(token) {
		return
	}

	if c.state.ShouldResetScreen {
		c.state.CurrentOperand = ""
		c.state.ShouldResetScreen = false
	}

	if token == "." && strings.Contains(c.state.CurrentOperand, ".") {
		return
	}

	if c.state.CurrentOperand == "0" && token != "." {
		c.state.CurrentOperand = token
		return
	}

	if digitCount(c.state.CurrentOperand) >= c.config.MaxDigits {
		return
	}

	c.state.CurrentOperand += token
}

// ChooseOperation sets the pending operator, computing any operation already
// pending first so that operations chain.
func (c *Calculator) ChooseOperation(op arith.Operator) {
	if c.state.CurrentOperand == "" || c.state.CurrentOperand == "0" {
		return
	}

	if c.state.PreviousOperand != "" && c.state.Operation != arith.OpNone {
		c.Compute()
	}

	c.state.Operation = op
	c.state.PreviousOperand = c.state.CurrentOperand
	c.state.ShouldResetScreen = true
}

// Compute applies the pending operation to the previous and current operands.
// It does nothing when no operation is pending or no second operand has been
// entered yet.
func (c *Calculator) Compute() {
	if c.state.Operation == arith.OpNone || c.state.ShouldResetScreen {
		return
	}

	prev, prevErr := parseOperand(c.state.PreviousOperand)
	current, currentErr := parseOperand(c.state.CurrentOperand)
	if prevErr != nil || currentErr != nil {
		c.fail()
		return
	}

	result, err := arith.Calculate(prev, current, c.state.Operation)
	if err != nil || result.IsUndefined() {
		c.fail()
		return
	}

	c.state.CurrentOperand = arith.FormatResult(result, c.config.MaxDecimalPlaces)
	c.resetOperation()
	c.state.ShouldResetScreen = false
}

// fail shows the error display and arms the reset flag so the next digit
// starts a fresh operand.
func (c *Calculator) fail() {
	c.state.CurrentOperand = ErrorDisplay
	c.resetOperation()
	c.state.ShouldResetScreen = true
}

func (c *Calculator) resetOperation() {
	c.state.Operation = arith.OpNone
	c.state.PreviousOperand = ""
}

// Clear restores the initial state
func (c *Calculator) Clear() {
	c.state = initialState()
}

// DeleteLast removes the last character of the current operand
func (c *Calculator) DeleteLast() {
	if c.state.CurrentOperand == ErrorDisplay {
		c.state.CurrentOperand = "0"
		return
	}

	if c.state.ShouldResetScreen {
		return
	}

	operand := c.state.CurrentOperand
	if len(operand) == 1 || (len(operand) == 2 && operand[0] == '-') {
		c.state.CurrentOperand = "0"
		return
	}
	c.state.CurrentOperand = operand[:len(operand)-1]
}

// ApplyPercent divides the current operand by 100
func (c *Calculator) ApplyPercent() {
	if c.state.CurrentOperand == ErrorDisplay {
		return
	}

	current, err := parseOperand(c.state.CurrentOperand)
	if err != nil {
		return
	}

	result, err := arith.Percent(current)
	if err != nil {
		c.state.CurrentOperand = ErrorDisplay
		return
	}
	c.state.CurrentOperand = arith.FormatResult(arith.Number(result), c.config.MaxDecimalPlaces)
}

func isNumberToken(token string) bool {
	return len(token) == 1 && (token == "." || (token[0] >= '0' && token[0] <= '9'))
}

// digitCount counts the characters of an operand other than the decimal point
// and sign.
func digitCount(operand string) int {
	n := 0
	for _, r := range operand {
		if r != '.' && r != '-' {
			n++
		}
	}
	return n
}

// parseOperand parses an operand string. Magnitudes beyond float64 parse to
// ±Inf so that arithmetic rejects them instead of the caller ignoring them.
func parseOperand(operand string) (float64, error) {
	v, err := strconv.ParseFloat(operand, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
		return v, nil
	}
	return v, err
}
