package cmd

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigRequiresTarget(t *testing.T) {
	if err := ParseConfig[struct{}](nil); err == nil {
		t.Fatal("expected error for nil config target")
	}
}

func TestParseConfigFromArgsParsesFlags(t *testing.T) {
	type cfg struct {
		Port int `env:"ADPILOT_ENTRYPOINT_TEST_PORT" envDefault:"8090"`
	}

	var parsed cfg
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfig(&parsed); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	fs.IntVar(&parsed.Port, "port", parsed.Port, "port")
	if err := ParseArgs(fs, []string{"-port", "9191"}); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if parsed.Port != 9191 {
		t.Fatalf("port = %d, want %d", parsed.Port, 9191)
	}
}

func TestParseArgsRequiresFlagSet(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

func TestRunWithTelemetryRequiresService(t *testing.T) {
	err := RunWithTelemetry(context.Background(), " ", func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for empty service name")
	}
}

func TestRunWithTelemetryRequiresRun(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), ServiceAds, nil); err == nil {
		t.Fatal("expected error for nil run function")
	}
}

func TestRunWithTelemetryExecutesRun(t *testing.T) {
	ran := false
	err := RunWithTelemetry(context.Background(), ServiceWorker, func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("run with telemetry: %v", err)
	}
	if !ran {
		t.Fatal("expected run function to execute")
	}
}
