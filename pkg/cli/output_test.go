package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestTextFormatter tests plain text output.
func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(FormatText).FormatTo(&buf, 42); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if buf.String() != "42\n" {
		t.Errorf("Expected \"42\\n\", got %q", buf.String())
	}
}

// TestJSONFormatter tests indented JSON output.
func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]int{"count": 3}
	if err := NewFormatter(FormatJSON).FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"count": 3`) {
		t.Errorf("Expected JSON output, got %q", buf.String())
	}
}

// TestNewFormatter_Default tests fallback to text.
func TestNewFormatter_Default(t *testing.T) {
	if _, ok := NewFormatter("junit").(*TextFormatter); !ok {
		t.Error("Expected text formatter for unknown format")
	}
}
