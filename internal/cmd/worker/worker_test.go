package worker

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("worker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8089 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.AdsAddr != "localhost:8080" {
		t.Fatalf("expected default ads addr, got %q", cfg.AdsAddr)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("expected default poll interval, got %v", cfg.PollInterval)
	}
	if cfg.MaxAttempts != 5 {
		t.Fatalf("expected default max attempts, got %d", cfg.MaxAttempts)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("ADPILOT_WORKER_ADS_ADDR", "env-ads")

	fs := flag.NewFlagSet("worker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-poll-interval", "10s", "-max-attempts", "2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.AdsAddr != "env-ads" {
		t.Fatalf("expected env ads addr, got %q", cfg.AdsAddr)
	}
	if cfg.PollInterval != 10*time.Second {
		t.Fatalf("expected flag poll interval, got %v", cfg.PollInterval)
	}
	if cfg.MaxAttempts != 2 {
		t.Fatalf("expected flag max attempts, got %d", cfg.MaxAttempts)
	}
}
