package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/clock"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/decoder"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/eventbus"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/filesource"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/history"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/random"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/tui"
	"github.com/realitycheck/realitycheck/internal/application"
	"github.com/realitycheck/realitycheck/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		maxScore   int
		seed       uint64
		mimeType   string
		configDir  string
		noProgress bool
		instant    bool
		noHistory  bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze an image or video for signs of manipulation",
		Long:  "Run the simulated authenticity analysis on a media file and print the report. Progress is shown on stderr.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			var loader domain.ConfigLoader = config.New()
			cfg, err := loader.Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			file, err := filesource.Describe(args[0], mimeType)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			newRand := random.Entropy()
			if cmd.Flags().Changed("seed") {
				newRand = random.Seeded(seed)
			}
			var sleeper domain.Sleeper = clock.New()
			if instant {
				sleeper = clock.Instant{}
			}

			svc := application.NewAnalyzeService(cfg, decoder.New(), sleeper, newRand, eventbus.Factory(logger), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			var observers []domain.ProgressObserver
			if !noProgress && !jsonOutput {
				errOut := cmd.ErrOrStderr()
				observers = append(observers, func(e domain.ProgressEvent) {
					fmt.Fprintln(errOut, tui.RenderProgress(e))
				})
			}

			analysis := svc.Start(ctx, file, observers...)
			report, err := analysis.Wait()
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if !noHistory {
				var hist domain.AnalysisHistory = history.New()
				entry := domain.HistoryEntry{
					Timestamp:  time.Now().UTC().Format(time.RFC3339),
					AnalysisID: analysis.ID,
					Filename:   report.Metadata.Filename,
					Format:     report.Metadata.Format,
					Score:      report.Score,
					IsFake:     report.IsFake,
					Verdict:    domain.VerdictFor(report.Score, cfg),
				}
				if err := hist.Save(configDir, entry); err != nil {
					logger.Warn("saving history", "error", err) // best-effort
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, cfg))
			}

			if ciMode && report.Score > maxScore {
				return fmt.Errorf("score %d exceeds maximum %d", report.Score, maxScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if score is above --max")
	cmd.Flags().IntVar(&maxScore, "max", 69, "Maximum manipulation score for CI mode")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for a reproducible report")
	cmd.Flags().StringVar(&mimeType, "mime", "", "MIME type override (default: sniffed from content)")
	cmd.Flags().StringVar(&configDir, "config", ".", "Directory holding .realitycheck.yaml and the analysis history")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Do not show progress")
	cmd.Flags().BoolVar(&instant, "instant", false, "Skip the pacing delays between phases")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the analysis in the history")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Cancel the analysis after this long (0 = no limit)")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
