package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
)

func TestConfig_PrepareFillsDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Prepare(); err != nil {
		t.Fatalf("Prepare error: %v", err)
	}

	if cfg.BaseURL != "http://localhost:3000/check-prime" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("zero timeout should stay zero, got %v", cfg.Timeout)
	}
	if cfg.Format != "text" || cfg.Color != "auto" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected output defaults %+v", cfg)
	}
	if len(cfg.Items) != len(domain.DefaultItems) {
		t.Fatalf("expected default items, got %v", cfg.Items)
	}
}

func TestConfig_PrepareKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		BaseURL:  "https://primes.example/api/check",
		Timeout:  time.Second,
		Rate:     3,
		Format:   "JSON",
		LogLevel: "Debug",
		Items:    []domain.Item{"7"},
	}
	if err := cfg.Prepare(); err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	if cfg.BaseURL != "https://primes.example/api/check" || cfg.Timeout != time.Second || cfg.Rate != 3 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
	if cfg.Format != "json" || cfg.LogLevel != "debug" {
		t.Fatalf("expected lower-cased enums, got %+v", cfg)
	}
	if len(cfg.Items) != 1 || cfg.Items[0] != "7" {
		t.Fatalf("items overwritten: %v", cfg.Items)
	}
}

func TestConfig_PrepareReportsEveryProblem(t *testing.T) {
	cfg := Config{
		BaseURL: "not a url",
		Rate:    -1,
		Color:   "rainbow",
	}

	err := cfg.Prepare()

	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected InvalidConfigError, got %v", err)
	}
	if len(cfgErr.Problems) != 3 {
		t.Fatalf("expected 3 problems, got %v", cfgErr.Problems)
	}
	msg := err.Error()
	for _, want := range []string{"BaseURL", "Rate must be >= 0", "Color \"rainbow\" must be one of"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestConfig_PrepareBoundsRate(t *testing.T) {
	cases := []struct {
		rate int
		ok   bool
	}{
		{0, true},
		{1000, true},
		{1001, false},
		{1000000000, false},
	}

	for _, tc := range cases {
		cfg := Config{Rate: tc.rate}
		err := cfg.Prepare()
		if tc.ok && err != nil {
			t.Fatalf("rate %d: unexpected error %v", tc.rate, err)
		}
		if !tc.ok {
			if err == nil || !strings.Contains(err.Error(), "Rate must be <= 1000") {
				t.Fatalf("rate %d: expected upper bound error, got %v", tc.rate, err)
			}
		}
	}
}
