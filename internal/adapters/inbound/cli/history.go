package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/history"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	var (
		configDir  string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			entries, err := history.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries, cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config", ".", "Directory holding the analysis history")
	cmd.Flags().IntVar(&limit, "limit", 20, "Show at most this many recent entries (0 = all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
