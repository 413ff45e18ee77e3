package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// PercentTool handles the percent key
type PercentTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewPercentTool creates a new percent tool
func NewPercentTool(sessions *session.Manager, logger *zap.Logger) *PercentTool {
	return &PercentTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *PercentTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPercent,
		mcp.WithDescription("Divide the current operand by 100"),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *PercentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.logger.Debug("Handled tool call", zap.String("tool", ToolPercent))

	return applyAction(t.sessions, req, "Applied percent.", results.StateToolArgs{},
		func(c *calculator.Calculator) error {
			c.ApplyPercent()
			return nil
		})
}
