package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// BatchService analyzes every media file under a directory:
// scan → describe → analyze (bounded concurrency) → summarize.
type BatchService struct {
	analyzer  *AnalyzeService
	scanner   domain.MediaScanner
	describer domain.FileDescriber
	logger    *slog.Logger
}

func NewBatchService(
	analyzer *AnalyzeService,
	scanner domain.MediaScanner,
	describer domain.FileDescriber,
	logger *slog.Logger,
) *BatchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BatchService{
		analyzer:  analyzer,
		scanner:   scanner,
		describer: describer,
		logger:    logger,
	}
}

// AnalyzeDir runs up to workers analyses at a time. A file that cannot be
// described or analyzed is recorded as a failed item; only cancellation
// aborts the whole batch.
func (b *BatchService) AnalyzeDir(ctx context.Context, root string, workers int, excludeDirs ...string) (*domain.BatchReport, error) {
	// 1. Scan
	scan, err := b.scanner.Scan(root, excludeDirs...)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	b.logger.Debug("scan complete", "root", scan.RootPath, "media", len(scan.MediaFiles), "skipped", scan.Skipped)

	items := make([]domain.BatchItem, len(scan.MediaFiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))

	// 2. Describe and analyze each candidate
	for i, rel := range scan.MediaFiles {
		items[i].Path = rel
		g.Go(func() error {
			file, err := b.describer.Describe(filepath.Join(scan.RootPath, rel))
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			report, err := b.analyzer.Analyze(gctx, file)
			if errors.Is(err, domain.ErrCancelled) {
				return err
			}
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			items[i].Report = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 3. Summarize
	out := &domain.BatchReport{RootPath: scan.RootPath, Items: items}
	for _, it := range items {
		switch {
		case it.Report == nil:
			out.Failed++
		case it.Report.IsFake:
			out.Analyzed++
			out.Flagged++
		default:
			out.Analyzed++
		}
	}
	b.logger.Info("batch complete", "root", scan.RootPath, "analyzed", out.Analyzed, "failed", out.Failed, "flagged", out.Flagged)
	return out, nil
}
