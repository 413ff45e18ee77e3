package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/config"
	"github.com/averycrespi/calculator-mcp/internal/logging"
	"github.com/averycrespi/calculator-mcp/internal/server"
	"github.com/averycrespi/calculator-mcp/pkg/project"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

var (
	configPath       string
	logLevel         string
	maxDigits        int
	maxDecimalPlaces int
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           project.Name,
		Short:         "Calculator exposed as MCP tools over stdio",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.IntVar(&maxDigits, "max-digits", 0, "Maximum digits per operand")
	flags.IntVar(&maxDecimalPlaces, "max-decimal-places", 0, "Maximum decimal places in results")

	evalCmd := &cobra.Command{
		Use:   "eval [keys...]",
		Short: "Press a sequence of calculator keys and print the display",
		Long: `Presses each key in order and prints the two display lines.

Keys: digits and '.', + - * / (or × ÷ −), = to compute, C to clear,
DEL to delete the last character, % for percent.

Example:
  calculator-mcp eval 12 + 3.5 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	rootCmd.AddCommand(evalCmd)

	return rootCmd
}

// loadConfig reads the config file and applies flags the user set explicitly
func loadConfig(cmd *cobra.Command) (*types.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("max-digits") {
		cfg.Calculator.MaxDigits = maxDigits
	}
	if flags.Changed("max-decimal-places") {
		cfg.Calculator.MaxDecimalPlaces = maxDecimalPlaces
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.NewCalculatorServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		logger.Error("Server error", zap.Error(err))
		return err
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return evalKeys(cmd.OutOrStdout(), cfg.Calculator, strings.Join(args, " "))
}

// evalKeys presses keys on a fresh calculator and writes the display to w
func evalKeys(w io.Writer, cfg calculator.Config, keys string) error {
	actions, err := calculator.ParseKeys(keys)
	if err != nil {
		return err
	}

	calc := calculator.New(cfg)
	for _, a := range actions {
		if err := calc.Dispatch(a); err != nil {
			return err
		}
	}

	display := calculator.NewDisplay(calc.State())
	if display.Previous != "" {
		fmt.Fprintln(w, display.Previous)
	}
	fmt.Fprintln(w, display.Current)
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
