package metrics

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestCollector_RecordAgent tests the agent and row counters.
func TestCollector_RecordAgent(t *testing.T) {
	c := NewCollector(nil)

	c.RecordAgent(2)
	c.RecordAgent(3)

	if got := testutil.ToFloat64(c.agentsExported); got != 2 {
		t.Errorf("Expected 2 agents exported, got %v", got)
	}
	if got := testutil.ToFloat64(c.rowsWritten); got != 5 {
		t.Errorf("Expected 5 rows written, got %v", got)
	}
}

// TestCollector_RecordExport tests outcome labeling.
func TestCollector_RecordExport(t *testing.T) {
	c := NewCollector(nil)

	c.RecordExport("success", 10*time.Millisecond)
	c.RecordExport("success", 20*time.Millisecond)
	c.RecordExport("error", 5*time.Millisecond)

	if got := testutil.ToFloat64(c.exportsTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("Expected 2 successful exports, got %v", got)
	}
	if got := testutil.ToFloat64(c.exportsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("Expected 1 failed export, got %v", got)
	}
}

// TestCollector_SharedRegistry tests registration on a caller-provided
// registry.
func TestCollector_SharedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(registry)

	if c.Registry() != registry {
		t.Error("Expected collector to use the provided registry")
	}

	c.RecordAgent(1)
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Error("Expected registered metric families")
	}
}

// TestCollector_LogSummary tests that gathered values reach the logger.
func TestCollector_LogSummary(t *testing.T) {
	c := NewCollector(nil)
	c.RecordAgent(4)
	c.RecordExport("success", time.Millisecond)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c.LogSummary(logger)

	out := buf.String()
	if !strings.Contains(out, "tycho_agents_exported_total") {
		t.Errorf("Expected agent counter in summary, got %s", out)
	}
	if !strings.Contains(out, "tycho_export_duration_seconds") {
		t.Errorf("Expected duration histogram in summary, got %s", out)
	}
}
