package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// withSessionID adds the optional session_id parameter to a tool
func withSessionID() mcp.ToolOption {
	return mcp.WithString(paramSessionID,
		mcp.Description("Calculator session to act on; omit to use the default session"),
	)
}

// getSessionID extracts the session id from an MCP request, resolving an
// omitted id to the default session
func getSessionID(req mcp.CallToolRequest) string {
	id := mcp.ParseString(req, paramSessionID, "")
	if id == "" {
		return session.DefaultSessionID
	}
	return id
}

// jsonResult marshals v into a text tool result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// sessionError converts a session manager error into a tool error
func sessionError(sessionID string, err error) *mcp.CallToolResult {
	if errors.Is(err, session.ErrSessionNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("Session %q not found. Use %s to start a session.", sessionID, ToolNewSession))
	}
	return mcp.NewToolResultError(fmt.Sprintf("Failed to update session %q: %v", sessionID, err))
}

// stateResult builds the standard result of a session tool
func stateResult(message string, args results.StateToolArgs, sessionID string, state calculator.State) (*mcp.CallToolResult, error) {
	return jsonResult(results.StateToolResult{
		Message:   message,
		Arguments: args,
		SessionID: sessionID,
		State:     results.NewCalculatorState(state),
	})
}

// applyAction runs fn against a session and returns the standard state result
func applyAction(sessions *session.Manager, req mcp.CallToolRequest, message string, args results.StateToolArgs, fn func(c *calculator.Calculator) error) (*mcp.CallToolResult, error) {
	sessionID := getSessionID(req)
	args.SessionID = mcp.ParseString(req, paramSessionID, "")

	state, err := sessions.Apply(sessionID, fn)
	if err != nil {
		return sessionError(sessionID, err), nil
	}

	return stateResult(message, args, sessionID, state)
}
