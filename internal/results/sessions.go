package results

import "github.com/averycrespi/calculator-mcp/internal/session"

// ListSessionsToolResult represents the result of the list sessions tool
type ListSessionsToolResult struct {
	Message  string         `json:"message"`
	Sessions []session.Info `json:"sessions"`
}

// CloseSessionToolResult represents the result of the close session tool
type CloseSessionToolResult struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
