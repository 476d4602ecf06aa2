package service

import (
	"context"
	"strings"
	"testing"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestRegistrationModulesRegisterAllTools(t *testing.T) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	var client adsv1.AdsServiceClient

	for _, module := range newMCPRegistrationModules(client) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			t.Fatalf("register module %q: %v", module.name, err)
		}
	}
}

func TestAddMCPToolRejectsUnknownHandlerType(t *testing.T) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	err := addMCPTool(mcpServer, &mcp.Tool{Name: "bogus"}, "not a handler")
	if err == nil {
		t.Fatal("expected error for unsupported handler type")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("err = %v, want tool name in message", err)
	}
}

func TestDialAdsGRPCRequiresAddr(t *testing.T) {
	if _, err := dialAdsGRPC(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty address")
	}
}
