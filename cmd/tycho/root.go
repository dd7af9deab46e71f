package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdde-hq/tycho/pkg/cli"
	"mdde-hq/tycho/pkg/config"
	"mdde-hq/tycho/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tycho",
	Short: "Tycho - multi-agent observation history export",
	Long: `Tycho reads SQLite observation history stores produced by multi-agent
simulation runs and exports per-agent observation tensors as CSV files.

Each stored observation is an N-dimensional tensor; tycho flattens it into
a single wide table whose column names preserve the full index path of the
original dimensions, so no information is lost in the 2-D projection.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig resolves the effective configuration: the --config file when
// given, otherwise tycho.yaml in the working directory when present,
// otherwise defaults. Environment overrides apply in every case.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("tycho.yaml"); err == nil {
			path = "tycho.yaml"
		}
	}

	if path == "" {
		cfg := config.Default()
		config.ApplyEnvOverrides(cfg)
		if err := config.Validate(cfg); err != nil {
			return nil, cli.NewConfigError("", err.Error())
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}
	return cfg, nil
}

// setupLogging builds the invocation logger from config and installs it as
// the slog default. --verbose forces debug level.
func setupLogging(cfg *config.Config) (*logging.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, cli.NewConfigError("logging", err.Error())
	}

	logger.SetDefault()
	return logger, nil
}

// resolveStorePath picks the store path from the flag, falling back to the
// config file.
func resolveStorePath(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, nil
	}
	return "", cli.NewConfigError("store.path", "no observation store given (use -f or set store.path)")
}
