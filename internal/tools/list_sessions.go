package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ListSessionsTool handles session listing requests
type ListSessionsTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewListSessionsTool creates a new session listing tool
func NewListSessionsTool(sessions *session.Manager, logger *zap.Logger) *ListSessionsTool {
	return &ListSessionsTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ListSessionsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListSessions,
		mcp.WithDescription("List open calculator sessions"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := t.sessions.List()
	t.logger.Debug("Handled tool call", zap.String("tool", ToolListSessions), zap.Int("sessions", len(infos)))

	return jsonResult(results.ListSessionsToolResult{
		Message:  fmt.Sprintf("Found %d sessions.", len(infos)),
		Sessions: infos,
	})
}
