package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// DeleteLastTool handles the backspace key
type DeleteLastTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewDeleteLastTool creates a new delete tool
func NewDeleteLastTool(sessions *session.Manager, logger *zap.Logger) *DeleteLastTool {
	return &DeleteLastTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *DeleteLastTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolDeleteLast,
		mcp.WithDescription("Delete the last character of the current operand. Turns Error back into 0."),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *DeleteLastTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.logger.Debug("Handled tool call", zap.String("tool", ToolDeleteLast))

	return applyAction(t.sessions, req, "Deleted last character.", results.StateToolArgs{},
		func(c *calculator.Calculator) error {
			c.DeleteLast()
			return nil
		})
}
