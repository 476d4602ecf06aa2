package service

import (
	"fmt"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

func registerAccountTools(registrar mcpRegistrationTarget, client adsv1.AdsServiceClient) error {
	return registerTool(registrar, domain.AccountRegisterTool(), domain.AccountRegisterHandler(client))
}

func registerRecommendationTools(registrar mcpRegistrationTarget, client adsv1.AdsServiceClient) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.RecommendationCreateTool(), handler: domain.RecommendationCreateHandler(client)},
		{tool: domain.RecommendationListTool(), handler: domain.RecommendationListHandler(client)},
		{tool: domain.RecommendationApproveTool(), handler: domain.RecommendationApproveHandler(client)},
		{tool: domain.RecommendationRejectTool(), handler: domain.RecommendationRejectHandler(client)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerGenerationTools(registrar mcpRegistrationTarget, client adsv1.AdsServiceClient) error {
	if err := registerTool(registrar, domain.CopyGenerateTool(), domain.CopyGenerateHandler(client)); err != nil {
		return err
	}
	return registerTool(registrar, domain.KeywordIdeasTool(), domain.KeywordIdeasHandler(client))
}

func registerApplyTools(registrar mcpRegistrationTarget, client adsv1.AdsServiceClient) error {
	if err := registerTool(registrar, domain.ApplyTool(), domain.ApplyHandler(client)); err != nil {
		return err
	}
	return registerTool(registrar, domain.ApplyResultsListTool(), domain.ApplyResultsListHandler(client))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}

// registerAccountResources registers readable account MCP resources.
func registerAccountResources(registrar mcpRegistrationTarget, client adsv1.AdsServiceClient) {
	registrar.AddResource(domain.AccountListResource(), domain.AccountListResourceHandler(client))
}
