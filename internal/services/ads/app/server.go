// Package server wires the ads runtime and gRPC lifecycle.
package server

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/platform/config"
	adsservice "github.com/adpilot/adpilot/internal/services/ads/api/grpc/ads"
	"github.com/adpilot/adpilot/internal/services/ads/generator"
	"github.com/adpilot/adpilot/internal/services/ads/secret"
	adssqlite "github.com/adpilot/adpilot/internal/services/ads/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// serverEnv holds env-parsed configuration for the ads server.
type serverEnv struct {
	DBPath        string `env:"ADPILOT_ADS_DB_PATH"`
	EncryptionKey string `env:"ADPILOT_ADS_ENCRYPTION_KEY"`

	GoogleDeveloperToken    string `env:"ADPILOT_GOOGLE_ADS_DEVELOPER_TOKEN"`
	GoogleOAuthClientID     string `env:"ADPILOT_GOOGLE_OAUTH_CLIENT_ID"`
	GoogleOAuthClientSecret string `env:"ADPILOT_GOOGLE_OAUTH_CLIENT_SECRET"`
	GoogleAPIBaseURL        string `env:"ADPILOT_GOOGLE_ADS_BASE_URL"`

	// Service-account mode replaces the per-account refresh token with a
	// deployment-level JWT-bearer credential when the email is set.
	GoogleServiceAccountEmail   string `env:"ADPILOT_GOOGLE_SA_EMAIL"`
	GoogleServiceAccountKey     string `env:"ADPILOT_GOOGLE_SA_KEY"`
	GoogleServiceAccountSubject string `env:"ADPILOT_GOOGLE_SA_SUBJECT"`

	MetaAccessToken string `env:"ADPILOT_META_ACCESS_TOKEN"`
	MetaAPIBaseURL  string `env:"ADPILOT_META_GRAPH_BASE_URL"`

	OpenAIAPIKey       string `env:"ADPILOT_OPENAI_API_KEY"`
	OpenAIModel        string `env:"ADPILOT_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIResponsesURL string `env:"ADPILOT_OPENAI_RESPONSES_URL"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "ads.db")
	}
	return cfg
}

// Server hosts the ads service.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *adssqlite.Store
	closeOnce  sync.Once
}

// New creates a configured ads server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured ads server listening on the provided address.
func NewWithAddr(addr string) (*Server, error) {
	srvEnv := loadServerEnv()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	store, err := openAdsStore(srvEnv.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	encryptionKey := strings.TrimSpace(srvEnv.EncryptionKey)
	if encryptionKey == "" {
		_ = listener.Close()
		_ = store.Close()
		// Refuse startup when key material is missing so refresh tokens are
		// never stored without encryption.
		return nil, errors.New("ADPILOT_ADS_ENCRYPTION_KEY is required")
	}
	keyBytes, err := decodeBase64Key(encryptionKey)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	sealer, err := secret.NewAESGCMSealer(keyBytes)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("build secret sealer: %w", err)
	}

	var vendors adsservice.VendorClients
	if strings.TrimSpace(srvEnv.GoogleDeveloperToken) != "" || strings.TrimSpace(srvEnv.MetaAccessToken) != "" {
		vendors = &envVendorClients{env: srvEnv, sealer: sealer}
	}

	var copyGen adsservice.CopyGenerator
	if strings.TrimSpace(srvEnv.OpenAIAPIKey) != "" {
		provider, err := generator.NewOpenAIProvider(generator.OpenAIConfig{
			ResponsesURL: strings.TrimSpace(srvEnv.OpenAIResponsesURL),
			APIKey:       strings.TrimSpace(srvEnv.OpenAIAPIKey),
		})
		if err != nil {
			_ = listener.Close()
			_ = store.Close()
			return nil, fmt.Errorf("build openai provider: %w", err)
		}
		copyGen, err = generator.NewGenerator(provider, srvEnv.OpenAIModel)
		if err != nil {
			_ = listener.Close()
			_ = store.Close()
			return nil, fmt.Errorf("build copy generator: %w", err)
		}
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	service := adsservice.NewService(store, store, store, vendors, copyGen, sealer)
	healthServer := health.NewServer()
	adsv1.RegisterAdsServiceServer(grpcServer, service)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("ads.v1.AdsService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the ads server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an ads server until the context ends.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// RunWithAddr creates and serves an ads server until the context ends.
func RunWithAddr(ctx context.Context, addr string) error {
	server, err := NewWithAddr(addr)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the ads server and blocks until it stops or context ends.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("ads server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}

	s.closeOnce.Do(func() {
		if s.health != nil {
			s.health.Shutdown()
		}
		if s.grpcServer != nil {
			s.grpcServer.Stop()
		}
		if s.listener != nil {
			if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
				log.Printf("close ads listener: %v", err)
			}
		}
		if s.store != nil {
			if err := s.store.Close(); err != nil {
				log.Printf("close ads store: %v", err)
			}
		}
	})
}

func openAdsStore(path string) (*adssqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := adssqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ads sqlite store: %w", err)
	}
	return store, nil
}

// decodeBase64Key accepts both raw and padded base64 encodings to reduce
// operational friction across secret managers while preserving exact key bytes.
func decodeBase64Key(value string) ([]byte, error) {
	key, rawErr := base64.RawStdEncoding.DecodeString(value)
	if rawErr == nil {
		return key, nil
	}
	key, stdErr := base64.StdEncoding.DecodeString(value)
	if stdErr == nil {
		return key, nil
	}
	return nil, rawErr
}
