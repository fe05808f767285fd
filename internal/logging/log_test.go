package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(&buf, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn by default, got %s", log.GetLevel())
	}

	log.Info().Msg("hidden")
	log.Warn().Str("number", "7").Msg("shown")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "number=7") {
		t.Fatalf("expected warn line with field, got %q", got)
	}
}

func TestNew_Debug(t *testing.T) {
	log, err := New(&bytes.Buffer{}, "DEBUG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %s", log.GetLevel())
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
