package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// CloseSessionTool handles session close requests
type CloseSessionTool struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewCloseSessionTool creates a new session close tool
func NewCloseSessionTool(sessions *session.Manager, logger *zap.Logger) *CloseSessionTool {
	return &CloseSessionTool{
		sessions: sessions,
		logger:   logger,
	}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Close a calculator session. Closing the default session clears it."),
		mcp.WithString(paramSessionID, mcp.Required(), mcp.Description("Session to close")),
	)
	return tool
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := mcp.ParseString(req, paramSessionID, "")
	if sessionID == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	if err := t.sessions.Close(sessionID); err != nil {
		return sessionError(sessionID, err), nil
	}
	t.logger.Debug("Handled tool call", zap.String("tool", ToolCloseSession), zap.String("session_id", sessionID))

	message := fmt.Sprintf("Session %s closed.", sessionID)
	if sessionID == session.DefaultSessionID {
		message = "Default session cleared."
	}

	return jsonResult(results.CloseSessionToolResult{
		Message:   message,
		SessionID: sessionID,
	})
}
