package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/tui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate analyzer configuration",
	}
	cmd.AddCommand(newConfigValidateCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a .realitycheck.yaml for errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := config.New().LoadFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", filepath.Base(path))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	var (
		configDir  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective analyzer configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, cfg)
			}
			source, err := filepath.Abs(filepath.Join(configDir, config.FileName))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderConfig(source, cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config", ".", "Directory holding .realitycheck.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output configuration as JSON")

	return cmd
}
