package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ClearTool handles the all-clear key
type ClearTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewClearTool creates a new clear tool
func NewClearTool(sessions *session.Manager, logger *zap.Logger) *ClearTool {
	return &ClearTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolClear,
		mcp.WithDescription("Reset the calculator to 0 with no pending operation"),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.logger.Debug("Handled tool call", zap.String("tool", ToolClear))

	return applyAction(t.sessions, req, "Cleared.", results.StateToolArgs{},
		func(c *calculator.Calculator) error {
			c.Clear()
			return nil
		})
}
