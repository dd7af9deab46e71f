package metrics

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tycho"

// Collector records export run metrics on a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	exportsTotal   *prometheus.CounterVec
	agentsExported prometheus.Counter
	rowsWritten    prometheus.Counter
	exportDuration prometheus.Histogram
}

// NewCollector creates a metrics collector. If registry is nil a private
// registry is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		exportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Total number of export runs by outcome",
			},
			[]string{"status"},
		),
		agentsExported: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "agents_exported_total",
				Help:      "Total number of agent CSV files written",
			},
		),
		rowsWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rows_written_total",
				Help:      "Total number of data rows written across all files",
			},
		),
		exportDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "export_duration_seconds",
				Help:      "End-to-end duration of export runs",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
		),
	}

	registry.MustRegister(c.exportsTotal, c.agentsExported, c.rowsWritten, c.exportDuration)

	return c
}

// RecordExport records the outcome and duration of one export run.
func (c *Collector) RecordExport(status string, duration time.Duration) {
	c.exportsTotal.WithLabelValues(status).Inc()
	c.exportDuration.Observe(duration.Seconds())
}

// RecordAgent records one written agent file and its data row count.
func (c *Collector) RecordAgent(rows int) {
	c.agentsExported.Inc()
	c.rowsWritten.Add(float64(rows))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// LogSummary gathers the registry and logs every metric value at debug
// level. Called at the end of a run instead of exposing a scrape endpoint.
func (c *Collector) LogSummary(logger *slog.Logger) {
	families, err := c.registry.Gather()
	if err != nil {
		logger.Warn("failed to gather metrics", "error", err)
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			args := []any{}
			for _, lp := range m.GetLabel() {
				args = append(args, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				args = append(args, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				args = append(args,
					"count", m.GetHistogram().GetSampleCount(),
					"sum", m.GetHistogram().GetSampleSum(),
				)
			default:
				continue
			}
			logger.Debug(mf.GetName(), args...)
		}
	}
}
