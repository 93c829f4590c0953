// Package main provides the exprmat CLI, which times lazy matrix
// expressions described in a YAML scenario file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/exprmat/matrix"
)

const version = "v0.1.0-dev"

var (
	configPath string
	workers    int
	memo       bool
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "exprmat",
	Short: "Lazy matrix expression benchmarks",
	Long: `exprmat builds elementwise matrix expressions, evaluates them in a
single pass per output cell and reports how long each took.

Without --config it runs the built-in scenarios.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run expression scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenarios,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "exprmat %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Scenario file (default: built-in scenarios)")
	runCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Goroutines per evaluation (0 = one per CPU)")
	runCmd.Flags().BoolVar(&memo, "memo", false, "Materialize shared sub-expressions once")

	rootCmd.AddCommand(runCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return err
		}
	}
	applyFlags(cmd, &cfg)
	if cfg.Verbose && !verbose {
		l, err := newLogger(true)
		if err != nil {
			return err
		}
		_ = logger.Sync()
		logger = l
	}

	ev := newEvaluator(cfg, logger)
	logger.Debug("Running scenarios",
		zap.Int("count", len(cfg.Scenarios)),
		zap.Int("workers", ev.Workers()),
		zap.Bool("memo", ev.Memo()))

	results, err := RunAll(cmd.Context(), logger, ev, cfg)
	printReport(cmd.OutOrStdout(), results)
	return err
}

// applyFlags lets explicitly set flags override the scenario file.
func applyFlags(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("memo") {
		cfg.Memo = memo
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func newEvaluator(cfg Config, l *zap.Logger) *matrix.Evaluator {
	opts := []matrix.Option{matrix.WithLogger(l)}
	if cfg.Memo {
		opts = append(opts, matrix.WithMemo())
	}
	if cfg.Workers != 1 {
		opts = append(opts, matrix.WithWorkers(cfg.Workers))
	}
	return matrix.NewEvaluator(opts...)
}

// executeContext is Execute with a caller-supplied context.
func executeContext(ctx context.Context, args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
