package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mdde-hq/tycho/pkg/cli"
	"mdde-hq/tycho/pkg/obs/storage"
)

var countFlags struct {
	storePath string
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of observation samples in a store",
	Long: `Print the number of distinct (episode, step) observation samples
available in the store. The printed count is the upper bound for the
observation index accepted by the export command.

Examples:
  # Count samples
  tycho count -f observations.db`,
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)

	countCmd.Flags().StringVarP(&countFlags.storePath, "obs-file", "f", "", "SQLite observation history store")
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := setupLogging(cfg); err != nil {
		return err
	}

	path, err := resolveStorePath(countFlags.storePath, cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(&storage.Config{
		Path:        path,
		BusyTimeout: cfg.Store.BusyTimeout.Duration(),
	})
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.CountObservations(context.Background())
	if err != nil {
		return cli.NewCommandError("count", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), count)
	return nil
}
