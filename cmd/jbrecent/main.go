// Package main implements the jbrecent CLI for listing recently opened
// JetBrains IDE projects.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fyrsmithlabs/jbrecent/internal/config"
	"github.com/fyrsmithlabs/jbrecent/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configPath overrides the default config file location
	configPath string
	// logLevel overrides logging.level from the config
	logLevel string
	// version information, set via -ldflags
	version = "dev"

	// cfg and logger are set up by setup before any subcommand runs.
	cfg    *config.Config
	logger *logging.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jbrecent",
	Short: "List recently opened JetBrains IDE projects",
	Long: `jbrecent reads the recent projects files kept by JetBrains IDEs
(GoLand, IntelliJ IDEA, PyCharm, ...) and prints each project's name, path
and icon.

Configuration is read from ~/.config/jbrecent/config.yaml and JBRECENT_*
environment variables.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/jbrecent/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration and installs the logger into the command context.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Logging.Level = logLevel
	}

	logCfg, err := logging.FromAppConfig(loaded.Logging)
	if err != nil {
		return err
	}
	logCfg.Writer = cmd.ErrOrStderr()

	l, err := logging.NewLogger(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg = loaded
	logger = l
	cmd.SetContext(logging.WithLogger(cmd.Context(), l))

	logger.Debug(cmd.Context(), "configuration loaded",
		zap.String("output.format", cfg.Output.Format),
		zap.Int("extract.workers", cfg.Extract.Workers),
	)
	return nil
}
