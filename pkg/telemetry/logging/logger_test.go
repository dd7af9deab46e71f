package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestNew_InvalidConfig tests rejection of unknown levels and formats.
func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("Expected error for unknown level, got nil")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("Expected error for unknown format, got nil")
	}
}

// TestLogger_LevelFiltering tests that records below the minimum level are
// dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Expected info record below warn level to be dropped")
	}
	if !strings.Contains(out, "visible") {
		t.Error("Expected warn record in output")
	}
	if logger.Level() != slog.LevelWarn {
		t.Errorf("Expected resolved level warn, got %v", logger.Level())
	}
}

// TestLogger_JSONFormat tests JSON output.
func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("message", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"message"`) || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("Expected JSON record, got %s", out)
	}
}

// TestLogger_ConsoleDropsTime tests that console format omits timestamps,
// keeping interactive output stable.
func TestLogger_ConsoleDropsTime(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("message")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("Expected no time attribute in console output, got %s", buf.String())
	}
}

// TestLogger_With tests field accumulation.
func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.With("component", "test").Info("message")

	if !strings.Contains(buf.String(), "component=test") {
		t.Errorf("Expected component field, got %s", buf.String())
	}
}

// TestParseDefaults tests that empty strings resolve to info/json.
func TestParseDefaults(t *testing.T) {
	level, err := parseLevel("")
	if err != nil || level != slog.LevelInfo {
		t.Errorf("Expected info for empty level, got %v (%v)", level, err)
	}
	format, err := parseFormat("")
	if err != nil || format != FormatJSON {
		t.Errorf("Expected json for empty format, got %v (%v)", format, err)
	}
}
