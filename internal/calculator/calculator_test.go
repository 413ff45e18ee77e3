package calculator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/calculator-mcp/internal/arith"
)

// press feeds a key script to c and fails the test on unrecognized keys
func press(t *testing.T, c *Calculator, script string) {
	t.Helper()
	actions, err := ParseKeys(script)
	require.NoError(t, err)
	for _, a := range actions {
		require.NoError(t, c.Dispatch(a))
	}
}

func TestNewCalculator(t *testing.T) {
	c := New(DefaultConfig())

	want := State{CurrentOperand: "0"}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Config{MaxDecimalPlaces: 10, MaxDigits: 15}, c.Config())
}

func TestNewCalculatorConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected Config
	}{
		{
			name:     "Custom limits kept",
			config:   Config{MaxDecimalPlaces: 5, MaxDigits: 10},
			expected: Config{MaxDecimalPlaces: 5, MaxDigits: 10},
		},
		{
			name:     "Zero decimal places allowed",
			config:   Config{MaxDecimalPlaces: 0, MaxDigits: 3},
			expected: Config{MaxDecimalPlaces: 0, MaxDigits: 3},
		},
		{
			name:     "Invalid limits replaced by defaults",
			config:   Config{MaxDecimalPlaces: -1, MaxDigits: 0},
			expected: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.config).Config())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{MaxDecimalPlaces: -1, MaxDigits: 1}.Validate())
	assert.Error(t, Config{MaxDecimalPlaces: 0, MaxDigits: 0}.Validate())
}

func TestAppendNumber(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		script   string
		expected string
	}{
		{name: "Digits append", script: "1 2 3", expected: "123"},
		{name: "Leading zero suppressed", script: "0 5", expected: "5"},
		{name: "Repeated zeros stay single", script: "0 0 0", expected: "0"},
		{name: "Decimal after zero", script: "0 . 5", expected: "0.5"},
		{name: "Single decimal point", script: "1 . . 5", expected: "1.5"},
		{name: "Second decimal rejected", script: "1 . 2 . 3", expected: "1.23"},
		{name: "Max digits", config: Config{MaxDecimalPlaces: 10, MaxDigits: 5}, script: "1 2 3 4 5 6", expected: "12345"},
		{name: "Decimal point not counted", config: Config{MaxDecimalPlaces: 10, MaxDigits: 3}, script: "1 . 2 3 4", expected: "1.23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.config
			if config == (Config{}) {
				config = DefaultConfig()
			}
			c := New(config)
			press(t, c, tt.script)
			assert.Equal(t, tt.expected, c.State().CurrentOperand)
		})
	}
}

func TestAppendNumberIgnoresInvalidTokens(t *testing.T) {
	c := New(DefaultConfig())
	c.AppendNumber("7")
	for _, token := range []string{"", "12", "a", "-", "e"} {
		c.AppendNumber(token)
	}
	assert.Equal(t, "7", c.State().CurrentOperand)
}

func TestAppendNumberMaxDigitsLength(t *testing.T) {
	c := New(Config{MaxDecimalPlaces: 10, MaxDigits: 5})
	for i := 0; i < 6; i++ {
		c.AppendNumber("9")
	}
	assert.Len(t, c.State().CurrentOperand, 5)
}

func TestAppendNumberMaxDigitsIgnoresSign(t *testing.T) {
	c := New(Config{MaxDecimalPlaces: 10, MaxDigits: 3})
	press(t, c, "3 - 8 =")
	require.Equal(t, "-5", c.State().CurrentOperand)

	press(t, c, "1 2 3")
	assert.Equal(t, "-512", c.State().CurrentOperand)
}

func TestAppendNumberResetsScreen(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5 +")
	require.True(t, c.State().ShouldResetScreen)

	c.AppendNumber("3")

	want := State{CurrentOperand: "3", PreviousOperand: "5", Operation: arith.OpAdd}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestChooseOperation(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5 +")

	want := State{CurrentOperand: "5", PreviousOperand: "5", Operation: arith.OpAdd, ShouldResetScreen: true}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestChooseOperationIgnoredOnZero(t *testing.T) {
	c := New(DefaultConfig())
	c.ChooseOperation(arith.OpAdd)
	assert.Equal(t, arith.OpNone, c.State().Operation)
	assert.Equal(t, "", c.State().PreviousOperand)
}

func TestChooseOperationChains(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5 + 3 -")

	state := c.State()
	assert.Equal(t, "8", state.CurrentOperand)
	assert.Equal(t, "8", state.PreviousOperand)
	assert.Equal(t, arith.OpSubtract, state.Operation)
	assert.True(t, state.ShouldResetScreen)

	press(t, c, "2 =")
	assert.Equal(t, "6", c.State().CurrentOperand)
}

func TestChooseOperationReplacesPendingOperator(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5 + *")

	state := c.State()
	assert.Equal(t, "5", state.PreviousOperand)
	assert.Equal(t, arith.OpMultiply, state.Operation)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected string
	}{
		{name: "Addition", script: "5 + 3 =", expected: "8"},
		{name: "Subtraction", script: "1 0 - 4 =", expected: "6"},
		{name: "Negative result", script: "3 - 8 =", expected: "-5"},
		{name: "Multiplication", script: "6 * 7 =", expected: "42"},
		{name: "Division", script: "1 5 / 4 =", expected: "3.75"},
		{name: "Decimal noise rounded", script: ". 1 + . 2 =", expected: "0.3"},
		{name: "Division by zero", script: "5 / 0 =", expected: "Error"},
		{name: "Large result uses exponent", script: "9 9 9 9 9 9 * 9 9 9 9 9 9 =", expected: "9.999980e+11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			press(t, c, tt.script)

			state := c.State()
			assert.Equal(t, tt.expected, state.CurrentOperand)
			assert.Equal(t, "", state.PreviousOperand)
			assert.Equal(t, arith.OpNone, state.Operation)
		})
	}
}

func TestComputeResetFlag(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5 + 3 =")
	assert.False(t, c.State().ShouldResetScreen, "successful compute leaves the flag unset")

	c.Clear()
	press(t, c, "5 / 0 =")
	assert.True(t, c.State().ShouldResetScreen, "error compute arms the flag")

	c.AppendNumber("4")
	assert.Equal(t, "4", c.State().CurrentOperand, "digit after Error starts a new operand")
}

func TestComputeNoOp(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5")
	before := c.State()
	c.Compute()
	if diff := cmp.Diff(before, c.State()); diff != "" {
		t.Errorf("compute without operation changed state (-before +after):\n%s", diff)
	}

	press(t, c, "+")
	before = c.State()
	c.Compute()
	if diff := cmp.Diff(before, c.State()); diff != "" {
		t.Errorf("compute right after choosing an operator changed state (-before +after):\n%s", diff)
	}
}

func TestComputeUnparsableOperand(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5 + .")
	c.Compute()

	state := c.State()
	assert.Equal(t, ErrorDisplay, state.CurrentOperand)
	assert.Equal(t, arith.OpNone, state.Operation)
	assert.Equal(t, "", state.PreviousOperand)
}

func TestComputeUnknownOperator(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "5")
	c.ChooseOperation(arith.Operator("^"))
	c.AppendNumber("2")
	c.Compute()

	assert.Equal(t, ErrorDisplay, c.State().CurrentOperand)
}

func TestComputeOverflow(t *testing.T) {
	c := New(DefaultConfig())
	c.state = State{
		CurrentOperand:  "1e308",
		PreviousOperand: "1e308",
		Operation:       arith.OpMultiply,
	}
	c.Compute()
	assert.Equal(t, ErrorDisplay, c.State().CurrentOperand)
}

func TestClear(t *testing.T) {
	scripts := []string{"", "1 2 3", "5 +", "5 + 3", "5 / 0 =", "7 %"}
	for _, script := range scripts {
		c := New(DefaultConfig())
		press(t, c, script)
		c.Clear()
		if diff := cmp.Diff(State{CurrentOperand: "0"}, c.State()); diff != "" {
			t.Errorf("clear after %q (-want +got):\n%s", script, diff)
		}
	}
}

func TestDeleteLast(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected string
	}{
		{name: "Drops last digit", script: "1 2 3 DEL", expected: "12"},
		{name: "Single digit becomes zero", script: "5 DEL", expected: "0"},
		{name: "Zero stays zero", script: "DEL", expected: "0"},
		{name: "Drops decimal point", script: "1 . DEL", expected: "1"},
		{name: "Negative single digit becomes zero", script: "3 - 8 = DEL", expected: "0"},
		{name: "Error becomes zero", script: "5 / 0 = DEL", expected: "0"},
		{name: "Ignored after choosing operator", script: "1 2 + DEL", expected: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			press(t, c, tt.script)
			assert.Equal(t, tt.expected, c.State().CurrentOperand)
		})
	}
}

func TestApplyPercent(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected string
	}{
		{name: "Fifty percent", script: "5 0 %", expected: "0.5"},
		{name: "Zero", script: "%", expected: "0"},
		{name: "Twice", script: "5 % %", expected: "0.0005"},
		{name: "Error untouched", script: "5 / 0 = %", expected: "Error"},
		{name: "Trailing decimal point parses", script: ". %", expected: "0"},
		{name: "Unparsable untouched", script: "5 + . %", expected: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			press(t, c, tt.script)
			assert.Equal(t, tt.expected, c.State().CurrentOperand)
		})
	}
}

func TestApplyPercentOutOfRangeOperand(t *testing.T) {
	c := New(DefaultConfig())
	c.state = State{CurrentOperand: "1.000000e+16555"}
	c.ApplyPercent()
	assert.Equal(t, ErrorDisplay, c.State().CurrentOperand)
}

func TestComputeOutOfRangeOperand(t *testing.T) {
	c := New(DefaultConfig())
	c.state = State{
		CurrentOperand:  "1.000000e+16555",
		PreviousOperand: "2",
		Operation:       arith.OpAdd,
	}
	c.Compute()
	assert.Equal(t, ErrorDisplay, c.State().CurrentOperand)
	assert.True(t, c.State().ShouldResetScreen)
}

func TestApplyPercentRespectsDecimalPlaces(t *testing.T) {
	c := New(Config{MaxDecimalPlaces: 2, MaxDigits: 15})
	press(t, c, "1 2 3 %")
	assert.Equal(t, "1.23", c.State().CurrentOperand)
	c.ApplyPercent()
	assert.Equal(t, "0.01", c.State().CurrentOperand)
}

func TestOperationSymbol(t *testing.T) {
	tests := []struct {
		op       arith.Operator
		expected string
	}{
		{op: arith.OpAdd, expected: "+"},
		{op: arith.OpSubtract, expected: "−"},
		{op: arith.OpMultiply, expected: "×"},
		{op: arith.OpDivide, expected: "÷"},
		{op: arith.OpNone, expected: ""},
		{op: arith.Operator("^"), expected: "^"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OperationSymbol(tt.op), "OperationSymbol(%q)", tt.op)
	}
}

func TestNewDisplay(t *testing.T) {
	c := New(DefaultConfig())
	press(t, c, "1 2 * 3")
	assert.Equal(t, Display{Current: "3", Previous: "12 ×"}, NewDisplay(c.State()))

	c.Compute()
	assert.Equal(t, Display{Current: "36"}, NewDisplay(c.State()))
}

func TestStateIsCopy(t *testing.T) {
	c := New(DefaultConfig())
	s := c.State()
	s.CurrentOperand = strings.Repeat("9", 3)
	assert.Equal(t, "0", c.State().CurrentOperand)
}
