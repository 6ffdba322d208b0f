package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/tui"
	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/realitycheck/realitycheck/internal/domain/scoring"
)

func newPhasesCmd() *cobra.Command {
	var (
		kind       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List the progress phases of an analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mk := domain.MediaKind(kind)
			if mk != domain.MediaImage && mk != domain.MediaVideo {
				return fmt.Errorf("unknown media kind %q (valid: image, video)", kind)
			}
			phases := scoring.Phases(mk)
			if jsonOutput {
				return renderJSON(cmd, phases)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPhases(mk, phases))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "image", "Media kind (image, video)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output phases as JSON")

	return cmd
}
