// Package worker parses worker command flags and launches the worker runtime.
package worker

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/adpilot/adpilot/internal/platform/cmd"
	workerserver "github.com/adpilot/adpilot/internal/services/worker/app"
)

// Config holds worker command configuration.
type Config struct {
	Port            int           `env:"ADPILOT_WORKER_PORT" envDefault:"8089"`
	AdsAddr         string        `env:"ADPILOT_WORKER_ADS_ADDR" envDefault:"localhost:8080"`
	DBPath          string        `env:"ADPILOT_WORKER_DB_PATH" envDefault:"data/worker.db"`
	PollInterval    time.Duration `env:"ADPILOT_WORKER_POLL_INTERVAL" envDefault:"30s"`
	MaxAttempts     int           `env:"ADPILOT_WORKER_MAX_ATTEMPTS" envDefault:"5"`
	RetryBackoff    time.Duration `env:"ADPILOT_WORKER_RETRY_BACKOFF" envDefault:"5s"`
	RetryMaxDelay   time.Duration `env:"ADPILOT_WORKER_RETRY_MAX_DELAY" envDefault:"5m"`
	GRPCDialTimeout time.Duration `env:"ADPILOT_WORKER_DIAL_TIMEOUT" envDefault:"2s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The worker health gRPC server port")
	fs.StringVar(&cfg.AdsAddr, "ads-addr", cfg.AdsAddr, "The ads gRPC server address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The worker SQLite database path")
	fs.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "Apply poll interval")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "Maximum apply attempts before dead-letter")
	fs.DurationVar(&cfg.RetryBackoff, "retry-backoff", cfg.RetryBackoff, "Base retry backoff delay")
	fs.DurationVar(&cfg.RetryMaxDelay, "retry-max-delay", cfg.RetryMaxDelay, "Maximum retry delay")
	fs.DurationVar(&cfg.GRPCDialTimeout, "dial-timeout", cfg.GRPCDialTimeout, "gRPC dependency dial timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the worker runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWorker, func(context.Context) error {
		return workerserver.Run(ctx, workerserver.RuntimeConfig{
			Port:            cfg.Port,
			AdsAddr:         cfg.AdsAddr,
			DBPath:          cfg.DBPath,
			PollInterval:    cfg.PollInterval,
			MaxAttempts:     cfg.MaxAttempts,
			RetryBackoff:    cfg.RetryBackoff,
			RetryMaxDelay:   cfg.RetryMaxDelay,
			GRPCDialTimeout: cfg.GRPCDialTimeout,
		})
	})
}
