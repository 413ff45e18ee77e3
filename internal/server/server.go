package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/internal/tools"
	"github.com/averycrespi/calculator-mcp/pkg/project"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer     *server.MCPServer
	sessions      *session.Manager
	config        *types.Config
	logger        *zap.Logger
	sweepInterval time.Duration
}

// NewCalculatorServer creates a new calculator MCP server with every tool registered
func NewCalculatorServer(config *types.Config, logger *zap.Logger) (*CalculatorServer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	idleTimeout, err := config.Sessions.IdleTimeoutDuration()
	if err != nil {
		return nil, err
	}
	sweepInterval, err := config.Sessions.SweepIntervalDuration()
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(session.Options{
		Calculator:  config.Calculator,
		MaxSessions: config.Sessions.MaxSessions,
		IdleTimeout: idleTimeout,
		Logger:      logger,
	})

	s := &CalculatorServer{
		mcpServer:     server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		sessions:      sessions,
		config:        config,
		logger:        logger,
		sweepInterval: sweepInterval,
	}
	s.registerTools()

	return s, nil
}

func (s *CalculatorServer) registerTools() {
	for _, tool := range tools.All(s.sessions, s.config.Calculator, s.logger) {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}
}

// MCPServer returns the underlying MCP server
func (s *CalculatorServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Sessions returns the session manager backing the tools
func (s *CalculatorServer) Sessions() *session.Manager {
	return s.sessions
}

// Serve serves MCP over stdin and stdout until ctx is cancelled or stdin closes
func (s *CalculatorServer) Serve(ctx context.Context) error {
	return s.ServeIO(ctx, os.Stdin, os.Stdout)
}

// ServeIO serves MCP over the given streams
func (s *CalculatorServer) ServeIO(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Starting calculator MCP server",
		zap.Int("max_digits", s.config.Calculator.MaxDigits),
		zap.Int("max_decimal_places", s.config.Calculator.MaxDecimalPlaces),
		zap.Int("max_sessions", s.config.Sessions.MaxSessions),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		s.sessions.Run(ctx, s.sweepInterval)
	}()
	defer func() {
		cancel()
		<-sweeperDone
	}()

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))

	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	s.logger.Info("Calculator MCP server stopped")
	return nil
}
