package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Tool is implemented by every calculator MCP tool
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every tool in registration order
func All(sessions *session.Manager, config calculator.Config, logger *zap.Logger) []Tool {
	return []Tool{
		NewNewSessionTool(sessions, logger),
		NewCloseSessionTool(sessions, logger),
		NewListSessionsTool(sessions, logger),
		NewGetStateTool(sessions, logger),
		NewAppendNumberTool(sessions, logger),
		NewChooseOperationTool(sessions, logger),
		NewComputeTool(sessions, logger),
		NewClearTool(sessions, logger),
		NewDeleteLastTool(sessions, logger),
		NewPercentTool(sessions, logger),
		NewPressKeysTool(sessions, logger),
		NewCalculateTool(config, logger),
	}
}
