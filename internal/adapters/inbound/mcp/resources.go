package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/history"
	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/realitycheck/realitycheck/internal/domain/scoring"
)

// registerResources registers all RealityCheck MCP resources on the given server.
func registerResources(s *server.MCPServer, configDir string) {
	// 1. realitycheck://config - effective analyzer tuning
	s.AddResource(
		mcplib.NewResource(
			"realitycheck://config",
			"Analyzer Config",
			mcplib.WithResourceDescription("Effective analyzer configuration (defaults merged with .realitycheck.yaml)"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(configDir),
	)

	// 2. realitycheck://history - completed analyses
	s.AddResource(
		mcplib.NewResource(
			"realitycheck://history",
			"Analysis History",
			mcplib.WithResourceDescription("Completed analyses, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(configDir),
	)

	// 3. realitycheck://phases/{kind} - phase sequence (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"realitycheck://phases/{kind}",
			"Progress Phases",
			mcplib.WithTemplateDescription("Progress phase sequence for a media kind"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handlePhasesResource(),
	)
}

func handleConfigResource(configDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(configDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonContents("realitycheck://config", cfg)
	}
}

func handleHistoryResource(configDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(configDir)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		return jsonContents("realitycheck://history", entries)
	}
}

func handlePhasesResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Populated by template matching
		raw, _ := request.Params.Arguments["kind"].(string)
		kind, err := parseKind(raw)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, scoring.Phases(kind))
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
