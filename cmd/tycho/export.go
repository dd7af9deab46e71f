package main

import (
	"context"

	"github.com/spf13/cobra"

	"mdde-hq/tycho/pkg/cli"
	"mdde-hq/tycho/pkg/obs"
	"mdde-hq/tycho/pkg/obs/export"
	"mdde-hq/tycho/pkg/obs/storage"
	"mdde-hq/tycho/pkg/telemetry/metrics"
)

var exportFlags struct {
	storePath   string
	observation int
	destination string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one observation sample as per-agent CSV files",
	Long: `Export the observation sample at the given 1-based index as CSV
files, one file per agent active at that (episode, step).

The index addresses the ascending (episode, step) enumeration; its valid
range is [1, count] where count is reported by the count command. Each
agent's N-dimensional observation tensor is flattened into one wide table
whose column names preserve the index path of the leading dimensions
(e.g. 0_3_2). Files are named agent_<id>.csv and overwritten if present.

Examples:
  # Export the 2nd sample into ./out
  tycho export -f observations.db -o 2 -d ./out`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlags.storePath, "obs-file", "f", "", "SQLite observation history store")
	exportCmd.Flags().IntVarP(&exportFlags.observation, "observation", "o", 0, "observation index within [1, num-observations]")
	exportCmd.Flags().StringVarP(&exportFlags.destination, "destination", "d", "", "destination directory for the CSV files")
	exportCmd.MarkFlagRequired("observation")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := setupLogging(cfg)
	if err != nil {
		return err
	}

	path, err := resolveStorePath(exportFlags.storePath, cfg)
	if err != nil {
		return err
	}

	destination := exportFlags.destination
	if destination == "" {
		destination = cfg.Export.Destination
	}
	if destination == "" {
		return cli.NewConfigError("export.destination",
			"no destination directory given (use -d or set export.destination)")
	}

	// Reject a bad index before touching the store.
	if exportFlags.observation < 1 {
		return &obs.InvalidIndexError{Index: exportFlags.observation}
	}

	store, err := storage.Open(&storage.Config{
		Path:        path,
		BusyTimeout: cfg.Store.BusyTimeout.Duration(),
	})
	if err != nil {
		return err
	}
	defer store.Close()

	exporter := export.New(store,
		export.WithLogger(logger.Slog()),
		export.WithMetrics(metrics.NewCollector(nil)),
	)

	if err := exporter.ExportObservation(context.Background(), destination, exportFlags.observation); err != nil {
		return cli.NewCommandError("export", err)
	}

	return nil
}
