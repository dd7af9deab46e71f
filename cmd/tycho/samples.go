package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mdde-hq/tycho/pkg/cli"
	"mdde-hq/tycho/pkg/obs/storage"
)

var samplesFlags struct {
	storePath string
	limit     int
	offset    int
	format    string
}

// sampleRow is one line of samples output.
type sampleRow struct {
	Index   int   `json:"index"`
	Episode int64 `json:"episode"`
	Step    int64 `json:"step"`
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List observation samples with their indices",
	Long: `List the (episode, step) pairs recorded in the store together with
their 1-based observation indices, in the same ascending order the export
command uses to resolve an index.

Examples:
  # List every sample
  tycho samples -f observations.db

  # Page through a large store
  tycho samples -f observations.db --limit 20 --offset 40

  # Machine-readable output
  tycho samples -f observations.db --format json`,
	RunE: runSamples,
}

func init() {
	rootCmd.AddCommand(samplesCmd)

	samplesCmd.Flags().StringVarP(&samplesFlags.storePath, "obs-file", "f", "", "SQLite observation history store")
	samplesCmd.Flags().IntVar(&samplesFlags.limit, "limit", -1, "max samples to list (-1 for all)")
	samplesCmd.Flags().IntVar(&samplesFlags.offset, "offset", 0, "samples to skip")
	samplesCmd.Flags().StringVar(&samplesFlags.format, "format", "text", "output format: text, json")
}

func runSamples(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := setupLogging(cfg); err != nil {
		return err
	}

	path, err := resolveStorePath(samplesFlags.storePath, cfg)
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

	keys, err := store.ListSamples(context.Background(), samplesFlags.limit, samplesFlags.offset)
	if err != nil {
		return cli.NewCommandError("samples", err)
	}

	rows := make([]sampleRow, len(keys))
	for i, key := range keys {
		rows[i] = sampleRow{
			Index:   samplesFlags.offset + i + 1,
			Episode: key.Episode,
			Step:    key.Step,
		}
	}

	out := cmd.OutOrStdout()
	switch cli.OutputFormat(samplesFlags.format) {
	case cli.FormatJSON:
		return cli.NewFormatter(cli.FormatJSON).FormatTo(out, rows)
	case cli.FormatText:
		fmt.Fprintf(out, "%-8s %-10s %s\n", "INDEX", "EPISODE", "STEP")
		for _, row := range rows {
			fmt.Fprintf(out, "%-8d %-10d %d\n", row.Index, row.Episode, row.Step)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", samplesFlags.format)
	}
}
