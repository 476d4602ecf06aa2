package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	platformgrpc "github.com/adpilot/adpilot/internal/platform/grpc"
	"github.com/adpilot/adpilot/internal/platform/timeouts"
	"github.com/adpilot/adpilot/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "adpilot MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(mcpRegistrationTarget) error
}

const (
	mcpAccountToolsModuleName        = "account-tools"
	mcpRecommendationToolsModuleName = "recommendation-tools"
	mcpGenerationToolsModuleName     = "generation-tools"
	mcpApplyToolsModuleName          = "apply-tools"
	mcpAccountResourceModuleName     = "account-resources"
)

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.AccountRegisterInput, domain.AccountResult](),
	newMCPToolRegistrar[domain.RecommendationCreateInput, domain.RecommendationResult](),
	newMCPToolRegistrar[domain.RecommendationListInput, domain.RecommendationListResult](),
	newMCPToolRegistrar[domain.RecommendationReviewInput, domain.RecommendationResult](),
	newMCPToolRegistrar[domain.CopyGenerateInput, domain.CopyGenerateResult](),
	newMCPToolRegistrar[domain.KeywordIdeasInput, domain.KeywordIdeasResult](),
	newMCPToolRegistrar[domain.ApplyInput, domain.ApplyResult](),
	newMCPToolRegistrar[domain.ApplyResultsListInput, domain.ApplyResultsListResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(client adsv1.AdsServiceClient) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpAccountToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerAccountTools(registrar, client)
			},
		},
		{
			name: mcpRecommendationToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerRecommendationTools(registrar, client)
			},
		},
		{
			name: mcpGenerationToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerGenerationTools(registrar, client)
			},
		},
		{
			name: mcpApplyToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerApplyTools(registrar, client)
			},
		},
		{
			name: mcpAccountResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registerAccountResources(registrar, client)
				return nil
			},
		},
	}
}

// Config configures the MCP server.
type Config struct {
	GRPCAddr string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// New creates a configured MCP server that connects to the ads gRPC service
// and hydrates tool/resource handlers from that API.
func New(ctx context.Context, grpcAddr string) (*Server, error) {
	conn, err := dialAdsGRPC(ctx, grpcAddr)
	if err != nil {
		return nil, err
	}
	server, err := newServer(conn)
	if err != nil {
		closeErr := conn.Close()
		if closeErr != nil {
			return nil, errors.Join(err, closeErr)
		}
		return nil, err
	}
	return server, nil
}

// newServer creates MCP tool/resource handler bindings once.
func newServer(conn *grpc.ClientConn) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	client := adsv1.NewAdsServiceClient(conn)

	for _, module := range newMCPRegistrationModules(client) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg.GRPCAddr)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport starts the MCP server using the provided transport. The
// server and its gRPC connection share a single exit path so cleanup behavior
// is consistent.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func dialAdsGRPC(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("ads address is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logf := func(format string, args ...any) {
		log.Printf("ads %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		addr,
		timeouts.GRPCDial,
		logf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) {
			if dialErr.Stage == platformgrpc.DialStageConnect {
				return nil, fmt.Errorf("connect to ads server at %s: %w", addr, dialErr.Err)
			}
			return nil, dialErr.Err
		}
		return nil, err
	}
	return conn, nil
}
