package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/arith"
	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ChooseOperationTool handles operator selection
type ChooseOperationTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewChooseOperationTool creates a new operator selection tool
func NewChooseOperationTool(sessions *session.Manager, logger *zap.Logger) *ChooseOperationTool {
	return &ChooseOperationTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ChooseOperationTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolChooseOperation,
		mcp.WithDescription("Choose the pending operator. If an operation is already pending with a second operand entered, "+
			"it is computed first so operations chain. Ignored while the current operand is 0."),
		mcp.WithString(paramOperator, mcp.Required(), mcp.Enum(operatorValues...), mcp.Description("Operator to apply")),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *ChooseOperationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := mcp.ParseString(req, paramOperator, "")
	if raw == "" {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}

	op, ok := arith.ParseOperator(raw)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown operator %q", raw)), nil
	}

	t.logger.Debug("Handled tool call", zap.String("tool", ToolChooseOperation), zap.String("operator", string(op)))

	message := fmt.Sprintf("Chose %s.", calculator.OperationSymbol(op))
	return applyAction(t.sessions, req, message, results.StateToolArgs{Operator: raw},
		func(c *calculator.Calculator) error {
			c.ChooseOperation(op)
			return nil
		})
}
