package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	platformgrpc "github.com/adpilot/adpilot/internal/platform/grpc"
	"github.com/adpilot/adpilot/internal/platform/timeouts"
	workerstorage "github.com/adpilot/adpilot/internal/services/worker/storage"
	workersqlite "github.com/adpilot/adpilot/internal/services/worker/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// RuntimeConfig controls worker startup, dependencies, and loop behavior.
type RuntimeConfig struct {
	Port            int
	AdsAddr         string
	DBPath          string
	PollInterval    time.Duration
	MaxAttempts     int
	RetryBackoff    time.Duration
	RetryMaxDelay   time.Duration
	GRPCDialTimeout time.Duration
}

const (
	defaultWorkerPort = 8089
	defaultWorkerDB   = "data/worker.db"
)

// Run starts worker runtime dependencies and the background apply loop.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(cfg.AdsAddr) == "" {
		return fmt.Errorf("ads address is required")
	}
	if cfg.Port <= 0 {
		cfg.Port = defaultWorkerPort
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = defaultWorkerDB
	}
	if cfg.GRPCDialTimeout <= 0 {
		cfg.GRPCDialTimeout = timeouts.GRPCDial
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create worker storage dir: %w", err)
		}
	}

	workerStore, err := workersqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open worker sqlite store: %w", err)
	}
	defer func() {
		if closeErr := workerStore.Close(); closeErr != nil {
			log.Printf("close worker sqlite store: %v", closeErr)
		}
	}()

	adsConn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		cfg.AdsAddr,
		cfg.GRPCDialTimeout,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return fmt.Errorf("dial ads service: %w", err)
	}
	defer func() {
		if closeErr := adsConn.Close(); closeErr != nil {
			log.Printf("close ads connection: %v", closeErr)
		}
	}()

	adsClient := adsv1.NewAdsServiceClient(adsConn)
	workerLoop := New(
		adsClient,
		&attemptStoreRecorder{store: workerStore},
		Config{
			PollInterval:  cfg.PollInterval,
			MaxAttempts:   cfg.MaxAttempts,
			RetryBackoff:  cfg.RetryBackoff,
			RetryMaxDelay: cfg.RetryMaxDelay,
		},
		nil,
	)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on worker port %d: %w", cfg.Port, err)
	}
	defer listener.Close()

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("worker.runtime", grpc_health_v1.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(listener)
	}()
	defer func() {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		<-serveErr
	}()

	log.Printf("worker server listening at %v", listener.Addr())
	return workerLoop.Run(ctx)
}

type attemptStoreRecorder struct {
	store workerstorage.AttemptStore
}

func (r *attemptStoreRecorder) RecordAttempt(ctx context.Context, attempt Attempt) error {
	if r == nil || r.store == nil {
		return nil
	}
	return r.store.RecordAttempt(ctx, workerstorage.AttemptRecord{
		AccountID:    attempt.AccountID,
		ApplyID:      attempt.ApplyID,
		Outcome:      attempt.Outcome,
		AppliedCount: attempt.AppliedCount,
		FailedCount:  attempt.FailedCount,
		AttemptCount: attempt.AttemptCount,
		LastError:    attempt.Error,
		CreatedAt:    attempt.CreatedAt,
	})
}
