package scoring

import (
	"time"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// Phases returns the fixed progress sequence for a media kind.
func Phases(kind domain.MediaKind) []domain.Phase {
	patterns := "Analyzing facial landmarks..."
	if kind == domain.MediaImage {
		patterns = "Analyzing image patterns..."
	}
	return []domain.Phase{
		{Percentage: 10, Status: "Initializing analysis..."},
		{Percentage: 25, Status: "Extracting media features..."},
		{Percentage: 40, Status: patterns},
		{Percentage: 60, Status: "Detecting visual inconsistencies..."},
		{Percentage: 75, Status: "Scanning for manipulation traces..."},
		{Percentage: 90, Status: "Verifying authenticity..."},
		{Percentage: 100, Status: "Finalizing report..."},
	}
}

// PhaseDelay draws the pause that follows a phase notification.
func PhaseDelay(cfg *domain.AnalyzerConfig, rng domain.RandomSource, kind domain.MediaKind) time.Duration {
	return time.Duration(between(rng, cfg.Tuning(kind).DelayMS)) * time.Millisecond
}
