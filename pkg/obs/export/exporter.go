package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"mdde-hq/tycho/pkg/obs"
	"mdde-hq/tycho/pkg/obs/tensor"
	"mdde-hq/tycho/pkg/telemetry/metrics"
)

// SampleSource is the slice of the observation store the Exporter needs.
// *storage.SQLiteStore implements it.
type SampleSource interface {
	ResolveSample(ctx context.Context, index int) (obs.SampleKey, error)
	Agents(ctx context.Context, key obs.SampleKey) ([]string, error)
	LoadTensor(ctx context.Context, key obs.SampleKey, agent string) (*tensor.Tensor, error)
}

// Exporter writes all agent observations of one sample as CSV files.
type Exporter struct {
	source  SampleSource
	logger  *slog.Logger
	metrics *metrics.Collector
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics collector. Defaults to a private collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(e *Exporter) {
		e.metrics = collector
	}
}

// New creates an Exporter reading from source.
func New(source SampleSource, opts ...Option) *Exporter {
	e := &Exporter{
		source: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = metrics.NewCollector(nil)
	}
	return e
}

// ExportObservation exports the sample at the 1-based observation index:
// one CSV file per agent active at that (episode, step), written into dir.
// The directory is created with parents if missing. Agents are processed in
// sorted identifier order; the first failure aborts the run, leaving any
// files already written on disk.
func (e *Exporter) ExportObservation(ctx context.Context, dir string, index int) error {
	if index < 1 {
		return &obs.InvalidIndexError{Index: index}
	}

	start := time.Now()
	logger := e.logger.With("run_id", uuid.NewString(), "index", index)

	err := e.exportObservation(ctx, logger, dir, index)
	if err != nil {
		e.metrics.RecordExport("error", time.Since(start))
		return err
	}

	e.metrics.RecordExport("success", time.Since(start))
	e.metrics.LogSummary(logger)
	return nil
}

func (e *Exporter) exportObservation(ctx context.Context, logger *slog.Logger, dir string, index int) error {
	key, err := e.source.ResolveSample(ctx, index)
	if err != nil {
		return err
	}

	agents, err := e.source.Agents(ctx, key)
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		return obs.NewStorageError("agents",
			fmt.Errorf("sample %s has no agent records", key))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", dir, err)
	}

	logger.Debug("exporting sample",
		"sample", key.String(),
		"agents", len(agents),
		"destination", dir,
	)

	for _, agent := range agents {
		t, err := e.source.LoadTensor(ctx, key, agent)
		if err != nil {
			return err
		}

		path, rows, err := WriteAgentCSV(dir, agent, t)
		if err != nil {
			return err
		}

		e.metrics.RecordAgent(rows)
		logger.Debug("agent exported",
			"agent", agent,
			"shape", t.Shape(),
			"rows", rows,
			"path", path,
		)
	}

	return nil
}
