package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/realitycheck/realitycheck/internal/domain/scoring"
)

// AnalyzeService orchestrates one analysis:
// validate → progress phases → metadata + score → reconcile → findings → report.
type AnalyzeService struct {
	cfg     domain.AnalyzerConfig
	decoder domain.DimensionDecoder
	sleeper domain.Sleeper
	newRand func() domain.RandomSource
	newBus  func() domain.ProgressBus
	logger  *slog.Logger
}

func NewAnalyzeService(
	cfg domain.AnalyzerConfig,
	decoder domain.DimensionDecoder,
	sleeper domain.Sleeper,
	newRand func() domain.RandomSource,
	newBus func() domain.ProgressBus,
	logger *slog.Logger,
) *AnalyzeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnalyzeService{
		cfg:     cfg,
		decoder: decoder,
		sleeper: sleeper,
		newRand: newRand,
		newBus:  newBus,
		logger:  logger,
	}
}

// Analysis is a running analysis. Observers may subscribe until it ends;
// a late observer only sees phases that fire after it subscribed.
type Analysis struct {
	ID string

	bus    domain.ProgressBus
	done   chan struct{}
	report *domain.Report
	err    error
}

// Subscribe registers an observer for the remaining phases. It fails once
// the analysis has ended.
func (a *Analysis) Subscribe(observer domain.ProgressObserver) error {
	return a.bus.Subscribe(observer)
}

// Done is closed once the analysis has a report or an error.
func (a *Analysis) Done() <-chan struct{} { return a.done }

// Wait blocks until the analysis ends. After a successful run every event
// has reached its observers; a cancelled run does not wait for them.
func (a *Analysis) Wait() (*domain.Report, error) {
	<-a.done
	return a.report, a.err
}

// Start launches an analysis in the background. The given observers are
// registered before the first phase fires.
func (s *AnalyzeService) Start(ctx context.Context, file domain.FileDescriptor, observers ...domain.ProgressObserver) *Analysis {
	a := &Analysis{
		ID:   uuid.NewString(),
		bus:  s.newBus(),
		done: make(chan struct{}),
	}
	for _, o := range observers {
		if err := a.bus.Subscribe(o); err != nil {
			a.err = fmt.Errorf("subscribing observer: %w", err)
			a.bus.Close()
			close(a.done)
			return a
		}
	}

	go func() {
		defer close(a.done)
		defer a.bus.Close()
		a.report, a.err = s.run(ctx, a, file)
	}()
	return a
}

// Analyze runs an analysis to completion.
func (s *AnalyzeService) Analyze(ctx context.Context, file domain.FileDescriptor, observers ...domain.ProgressObserver) (*domain.Report, error) {
	return s.Start(ctx, file, observers...).Wait()
}

func (s *AnalyzeService) run(ctx context.Context, a *Analysis, file domain.FileDescriptor) (*domain.Report, error) {
	log := s.logger.With("analysis_id", a.ID, "file", file.Name)

	// 0. Reject bad input before any phase fires
	if err := s.cfg.CheckFile(file); err != nil {
		log.Debug("rejected input", "error", err)
		return nil, err
	}

	kind := file.Kind()
	rng := s.newRand()
	start := time.Now()
	log.Debug("analysis started", "kind", kind, "mime", file.MIMEType, "size", file.Size)

	// 1. Progress phases
	err := emitPhases(ctx, a.bus, s.sleeper, scoring.Phases(kind), func() time.Duration {
		return scoring.PhaseDelay(&s.cfg, rng, kind)
	})
	if err == nil {
		if derr := a.bus.Drain(ctx); derr != nil {
			err = fmt.Errorf("%w: delivering progress: %w", domain.ErrCancelled, derr)
		}
	}
	if err != nil {
		log.Info("analysis cancelled", "error", err)
		return nil, err
	}

	// 2. Metadata and score
	metadata := s.extractMetadata(log, rng, file)
	result := scoring.ScoreFile(&s.cfg, rng, file)

	// 3. Verdict must agree with the delivered score
	result, overridden := scoring.Reconcile(&s.cfg, result)
	if overridden {
		log.Debug("reconciled verdict", "score", result.Score, "is_fake", result.IsFake)
	}

	// 4. Findings keyed on the reconciled score
	anomalies, details := scoring.GenerateFindings(&s.cfg, rng, result.Score, kind)

	log.Info("analysis complete",
		"score", result.Score,
		"is_fake", result.IsFake,
		"anomalies", len(anomalies),
		"elapsed", time.Since(start))

	return &domain.Report{
		Score:            result.Score,
		IsFake:           result.IsFake,
		Confidence:       result.Confidence,
		Anomalies:        anomalies,
		Metadata:         metadata,
		TechnicalDetails: details,
	}, nil
}

func (s *AnalyzeService) extractMetadata(log *slog.Logger, rng domain.RandomSource, file domain.FileDescriptor) domain.Metadata {
	md := domain.Metadata{
		Platform: domain.Platform,
		Filename: file.Name,
		Filesize: scoring.FormatFileSize(file.Size),
		Format:   scoring.FormatOf(file.MIMEType),
	}

	if file.Kind() != domain.MediaImage {
		md.Dimensions, md.Duration = scoring.SynthesizeVideo(rng)
		return md
	}

	md.Dimensions = domain.UnknownDimensions
	if s.decoder == nil {
		return md
	}
	dims, err := s.decoder.DecodeDimensions(file)
	if err != nil {
		if !errors.Is(err, domain.ErrDecode) {
			err = fmt.Errorf("%w: %w", domain.ErrDecode, err)
		}
		log.Debug("dimensions unavailable", "error", err)
		return md
	}
	md.Dimensions = scoring.FormatDimensions(dims)
	return md
}
