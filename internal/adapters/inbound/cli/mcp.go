package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/realitycheck/realitycheck/internal/adapters/inbound/mcp"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the RealityCheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start RealityCheck MCP server (stdio)",
		Long: "Start the RealityCheck MCP server using stdio transport. Assistants can analyze media files, " +
			"scan directories, list phases and read the analysis history. The config in --config is checked before serving.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// tools reload the config per call; refuse to start on one that can never load
			cfg, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config from %s: %w", configDir, err)
			}

			logger := newLogger(cmd)
			logger.Info("starting MCP server", "config_dir", configDir,
				"fake_threshold", cfg.FakeThreshold, "allowed_types", len(cfg.AllowedTypes))
			s := mcpadapter.NewRealityCheckMCPServer(configDir, logger)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configDir, "config", ".", "Directory holding .realitycheck.yaml and the analysis history")

	return cmd
}
