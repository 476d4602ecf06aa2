// Package mcp parses MCP command flags and launches the MCP stdio server.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/adpilot/adpilot/internal/platform/cmd"
	mcpservice "github.com/adpilot/adpilot/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	AdsAddr string `env:"ADPILOT_MCP_ADS_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.AdsAddr, "ads-addr", cfg.AdsAddr, "The ads gRPC server address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{GRPCAddr: cfg.AdsAddr})
	})
}
