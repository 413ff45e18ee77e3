package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ComputeTool handles the equals key
type ComputeTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewComputeTool creates a new compute tool
func NewComputeTool(sessions *session.Manager, logger *zap.Logger) *ComputeTool {
	return &ComputeTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ComputeTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCompute,
		mcp.WithDescription("Apply the pending operation to the previous and current operands (the equals key). "+
			"Failures, including division by zero, show Error."),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *ComputeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.logger.Debug("Handled tool call", zap.String("tool", ToolCompute))

	return applyAction(t.sessions, req, "Computed.", results.StateToolArgs{},
		func(c *calculator.Calculator) error {
			c.Compute()
			return nil
		})
}
