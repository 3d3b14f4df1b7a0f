package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-patterns/internal/config"
	"github.com/goliatone/go-patterns/internal/demo"
)

type rootOptions struct {
	configPath string
	verbose    bool

	buildLogger func(verbose bool) (*zap.Logger, error)
	logger      *zap.Logger
	env         *demo.Env
}

func newRootOptions() *rootOptions {
	return &rootOptions{buildLogger: productionLogger}
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	if verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return logConfig.Build()
}

// syncLogger flushes the logger. Execute skips PersistentPostRun when a
// command fails, so callers sync after Execute returns.
func (o *rootOptions) syncLogger() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Run the design pattern demonstrations",
		Long: `patterns runs small demonstrations of four design patterns:

  render        Adapter: a page rendered through any compatible renderer
  capabilities  Bridge: renderers checked against a required method set
  formbuilder   Builder: a login form assembled by one director
  gameboard     Factory Method: checkers and chess boards`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.buildLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			logger.Debug("configuration loaded",
				zap.String("path", opts.configPath),
				zap.Int("width", cfg.Width),
				zap.String("color", cfg.Color),
				zap.String("board", cfg.Board))

			opts.env = demo.NewEnv(cmd.OutOrStdout(), demo.WithLogger(logger), demo.WithConfig(cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newFormBuilderCmd(opts))
	rootCmd.AddCommand(newGameBoardCmd(opts))
	rootCmd.AddCommand(newCapabilitiesCmd(opts))
	return rootCmd
}

// run executes the command line in args and always syncs the logger.
func run(opts *rootOptions, args []string, out io.Writer) error {
	defer opts.syncLogger()

	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	if out != nil {
		cmd.SetOut(out)
	}
	return cmd.Execute()
}

func main() {
	if err := run(newRootOptions(), os.Args[1:], nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
