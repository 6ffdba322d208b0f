package cli

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/clock"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/decoder"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/eventbus"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/filesource"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/random"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/scanner"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/tui"
	"github.com/realitycheck/realitycheck/internal/application"
	"github.com/realitycheck/realitycheck/internal/domain"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		workers    int
		seed       uint64
		configDir  string
		instant    bool
		exclude    []string
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Analyze every image and video under a directory",
		Long:  "Walk a directory, analyze each media file concurrently and print a summary. Files that cannot be analyzed are listed as failures.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			logger := newLogger(cmd)

			cfg, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			newRand := random.Entropy()
			if cmd.Flags().Changed("seed") {
				newRand = random.Seeded(seed)
			}
			var sleeper domain.Sleeper = clock.New()
			if instant {
				sleeper = clock.Instant{}
			}

			analyzer := application.NewAnalyzeService(cfg, decoder.New(), sleeper, newRand, eventbus.Factory(logger), logger)
			batch := application.NewBatchService(analyzer, scanner.New(), filesource.Describer{}, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			report, err := batch.AnalyzeDir(ctx, root, workers, exclude...)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderBatch(report, cfg))
			}

			if ciMode && report.Flagged > 0 {
				return fmt.Errorf("%d of %d files flagged as manipulated", report.Flagged, report.Analyzed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any file is flagged as fake")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of concurrent analyses")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; every file uses the same seeded stream")
	cmd.Flags().StringVar(&configDir, "config", ".", "Directory holding .realitycheck.yaml")
	cmd.Flags().BoolVar(&instant, "instant", false, "Skip the pacing delays between phases")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to skip")

	return cmd
}
