package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// NewSessionTool handles session creation requests
type NewSessionTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewNewSessionTool creates a new session creation tool
func NewNewSessionTool(sessions *session.Manager, logger *zap.Logger) *NewSessionTool {
	return &NewSessionTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *NewSessionTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Start a new calculator session with its own display, returning the session id and initial state"),
	)
	return tool
}

// Handle processes the tool request
func (t *NewSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := t.sessions.Create()
	t.logger.Debug("Handled tool call", zap.String("tool", ToolNewSession), zap.String("session_id", info.ID))

	state, err := t.sessions.Get(info.ID)
	if err != nil {
		return sessionError(info.ID, err), nil
	}

	return stateResult("Session created.", results.StateToolArgs{}, info.ID, state)
}
