package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// GetStateTool handles state read requests
type GetStateTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewGetStateTool creates a new state read tool
func NewGetStateTool(sessions *session.Manager, logger *zap.Logger) *GetStateTool {
	return &GetStateTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *GetStateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetState,
		mcp.WithDescription("Read the operands, pending operation and display lines of a calculator session"),
		withSessionID(),
	)
	return tool
}

// Handle processes the tool request
func (t *GetStateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := getSessionID(req)
	t.logger.Debug("Handled tool call", zap.String("tool", ToolGetState), zap.String("session_id", sessionID))

	state, err := t.sessions.Get(sessionID)
	if err != nil {
		return sessionError(sessionID, err), nil
	}

	args := results.StateToolArgs{SessionID: mcp.ParseString(req, paramSessionID, "")}
	return stateResult("Current state.", args, sessionID, state)
}
