package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// PressKeysTool replays a sequence of calculator keys
type PressKeysTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewPressKeysTool creates a new key sequence tool
func NewPressKeysTool(sessions *session.Manager, logger *zap.Logger) *PressKeysTool {
	return &PressKeysTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a whitespace-separated sequence of calculator keys, e.g. \"12 + 3.5 =\". "+
			"Keys: digits and '.', + - * / (or × ÷ −), = to compute, C to clear, DEL to delete, % for percent."),
		mcp.WithString(paramKeys, mcp.Required(), mcp.Description("Keys to press in order")),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, paramKeys, "")
	if keys == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	actions, err := calculator.ParseKeys(keys)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse keys: %v", err)), nil
	}

	t.logger.Debug("Handled tool call", zap.String("tool", ToolPressKeys), zap.Int("actions", len(actions)))

	return applyAction(t.sessions, req, fmt.Sprintf("Pressed %d keys.", len(actions)), results.StateToolArgs{Keys: keys},
		func(c *calculator.Calculator) error {
			for _, a := range actions {
				if err := c.Dispatch(a); err != nil {
					return err
				}
			}
			return nil
		})
}
