package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/locqa/locqa/internal/application"
)

// NewLocQAMCPServer creates an MCP server with the locqa tools and resources
// registered. Relative paths in tool arguments resolve against projectPath.
func NewLocQAMCPServer(projectPath string, svc *application.QAService) *server.MCPServer {
	s := server.NewMCPServer(
		"locqa",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, svc)
	registerResources(s, projectPath, svc)

	return s
}
