package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/arith"
	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// CalculateTool evaluates a single binary operation without touching any session
type CalculateTool struct {
	config calculator.Config
	logger *zap.Logger
}

// NewCalculateTool creates a new stateless calculate tool
func NewCalculateTool(config calculator.Config, logger *zap.Logger) *CalculateTool {
	return &CalculateTool{
		config: config,
		logger: logger,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Compute a <operator> b and format it the way the calculator display would. "+
			"Division by zero yields Error."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
		mcp.WithString(paramOperator, mcp.Required(), mcp.Enum(operatorValues...), mcp.Description("Operator to apply")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if mcp.ParseArgument(req, "a", nil) == nil {
		return mcp.NewToolResultError("a parameter is required"), nil
	}
	if mcp.ParseArgument(req, "b", nil) == nil {
		return mcp.NewToolResultError("b parameter is required"), nil
	}
	raw := mcp.ParseString(req, paramOperator, "")
	if raw == "" {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}

	a := mcp.ParseFloat64(req, "a", 0)
	b := mcp.ParseFloat64(req, "b", 0)
	op, _ := arith.ParseOperator(raw)

	result, err := arith.Calculate(a, b, op)
	if err != nil {
		t.logger.Debug("Calculation failed", zap.String("tool", ToolCalculate), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("Calculation failed (%s): %v", arith.ErrorKind(err), err)), nil
	}

	formatted := arith.FormatResult(result, t.config.MaxDecimalPlaces)
	t.logger.Debug("Handled tool call", zap.String("tool", ToolCalculate), zap.String("result", formatted))

	message := fmt.Sprintf("%v %s %v = %s", a, calculator.OperationSymbol(op), b, formatted)
	return jsonResult(results.CalculateToolResult{
		Message:   message,
		Arguments: results.CalculateToolArgs{A: a, B: b, Operator: raw},
		Result:    formatted,
		Undefined: result.IsUndefined(),
	})
}
