package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// AppendNumberTool handles digit and decimal point entry
type AppendNumberTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAppendNumberTool creates a new number entry tool
func NewAppendNumberTool(sessions *session.Manager, logger *zap.Logger) *AppendNumberTool {
	return &AppendNumberTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *AppendNumberTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolAppendNumber,
		mcp.WithDescription("Type digits or a decimal point into the current operand, one key per character. "+
			"Leading zeros are suppressed, a second decimal point is ignored and input beyond the digit limit is dropped."),
		mcp.WithString(paramInput, mcp.Required(), mcp.Description("Characters to type, each a digit 0-9 or '.', e.g. \"12.5\"")),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *AppendNumberTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := mcp.ParseString(req, paramInput, "")
	if input == "" {
		return mcp.NewToolResultError("input parameter is required"), nil
	}
	if i := strings.IndexFunc(input, func(r rune) bool { return r != '.' && (r < '0' || r > '9') }); i >= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("input may only contain digits and '.', got %q", input)), nil
	}

	t.logger.Debug("Handled tool call", zap.String("tool", ToolAppendNumber), zap.String("input", input))

	return applyAction(t.sessions, req, fmt.Sprintf("Typed %q.", input), results.StateToolArgs{Input: input},
		func(c *calculator.Calculator) error {
			for _, r := range input {
				c.AppendNumber(string(r))
			}
			return nil
		})
}
