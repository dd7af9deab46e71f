package cli

import (
	"errors"
	"strings"
	"testing"
)

// TestConfigError tests message formatting with and without a field.
func TestConfigError(t *testing.T) {
	err := NewConfigError("store.path", "no store given")
	if !strings.Contains(err.Error(), "store.path") {
		t.Errorf("Unexpected message: %s", err.Error())
	}

	bare := NewConfigError("", "bad config")
	if strings.Contains(bare.Error(), "in ") {
		t.Errorf("Unexpected message for empty field: %s", bare.Error())
	}
}

// TestCommandError_Unwrap tests cause unwrapping.
func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("store unreachable")
	err := NewCommandError("count", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "count") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}
