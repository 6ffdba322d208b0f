package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
	"github.com/realitycheck/realitycheck/internal/domain"
)

const configHeader = `# RealityCheck analyzer configuration
# Every value below is the built-in default. Delete keys you do not change;
# absent keys keep their defaults.
#
# Scores are clamped to score_clamp. A score at or above fake_threshold is
# reported as fake; medium_threshold starts the "Potentially Modified" tier.

`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .realitycheck.yaml configuration file",
		Long:  "Create a .realitycheck.yaml holding the default analyzer tuning.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			content, err := generateConfig()
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .realitycheck.yaml")

	return cmd
}

func generateConfig() ([]byte, error) {
	body, err := config.Marshal(domain.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}
