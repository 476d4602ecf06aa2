// Package ads parses ads command flags and launches the ads gRPC service.
package ads

import (
	"context"
	"flag"

	entrypoint "github.com/adpilot/adpilot/internal/platform/cmd"
	server "github.com/adpilot/adpilot/internal/services/ads/app"
)

// Config holds ads command configuration.
type Config struct {
	Port int `env:"ADPILOT_ADS_PORT" envDefault:"8080"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The ads gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the ads service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAds, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
