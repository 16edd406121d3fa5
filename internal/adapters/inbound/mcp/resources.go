package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/locqa/locqa/internal/application"
	"github.com/locqa/locqa/internal/domain"
)

const (
	configURI  = "locqa://config"
	historyURI = "locqa://history"
)

// registerResources registers all locqa MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, svc *application.QAService) {
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Effective Configuration",
			mcplib.WithResourceDescription("The .locqa.yaml settings merged over the defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath, svc),
	)

	s.AddResource(
		mcplib.NewResource(
			historyURI,
			"Run History",
			mcplib.WithResourceDescription("Summaries of previous QA runs, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath, svc),
	)
}

func handleConfigResource(projectPath string, svc *application.QAService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := svc.Config(projectPath, domain.ProjectConfig{})
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonResource(configURI, cfg)
	}
}

func handleHistoryResource(projectPath string, svc *application.QAService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := svc.History(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.RunEntry{}
		}
		return jsonResource(historyURI, entries)
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
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
