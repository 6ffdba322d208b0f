package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// NewRealityCheckMCPServer creates a new MCP server with all RealityCheck
// tools and resources registered. configDir is where .realitycheck.yaml and
// the analysis history live.
func NewRealityCheckMCPServer(configDir string, logger *slog.Logger) *server.MCPServer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := server.NewMCPServer(
		"realitycheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, configDir, logger)
	registerResources(s, configDir)

	return s
}
