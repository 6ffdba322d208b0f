package scoring

import (
	"strings"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// Signal is the keyword evidence found in a file name.
type Signal string

const (
	SignalNone Signal = "none"
	SignalFake Signal = "fake"
	SignalReal Signal = "real"
)

// KeywordSignal scans the lowercased file name for the configured
// vocabularies. Fake keywords take priority over real ones.
func KeywordSignal(cfg *domain.AnalyzerConfig, filename string) (Signal, string) {
	name := strings.ToLower(filename)
	for _, kw := range cfg.FakeKeywords {
		if strings.Contains(name, strings.ToLower(kw)) {
			return SignalFake, kw
		}
	}
	for _, kw := range cfg.RealKeywords {
		if strings.Contains(name, strings.ToLower(kw)) {
			return SignalReal, kw
		}
	}
	return SignalNone, ""
}

// ScoreFile computes the manipulation score for a file from its name, kind
// and size. The verdict of a keyword match is the intended one and may
// disagree with the threshold under custom ranges; Reconcile settles it.
func ScoreFile(cfg *domain.AnalyzerConfig, rng domain.RandomSource, file domain.FileDescriptor) domain.ScoreResult {
	signal, _ := KeywordSignal(cfg, file.Name)
	switch signal {
	case SignalFake:
		return domain.ScoreResult{
			Score:      between(rng, cfg.FakeScore),
			IsFake:     true,
			Confidence: between(rng, cfg.FakeConfidence),
		}
	case SignalReal:
		return domain.ScoreResult{
			Score:      between(rng, cfg.RealScore),
			IsFake:     false,
			Confidence: between(rng, cfg.RealConfidence),
		}
	}

	score := adjustedScore(cfg, rng, file)
	isFake := cfg.IsFake(score)

	conf := cfg.Confidence
	if isFake {
		conf.Min = cfg.FakeConfidenceFloor
	}

	return domain.ScoreResult{
		Score:      score,
		IsFake:     isFake,
		Confidence: between(rng, conf),
	}
}

// adjustedScore applies the base, extension, size and jitter adjustments
// and clamps the result.
func adjustedScore(cfg *domain.AnalyzerConfig, rng domain.RandomSource, file domain.FileDescriptor) int {
	tuning := cfg.Tuning(file.Kind())
	score := tuning.BaseScore

	if r, ok := tuning.Extensions[Extension(file.Name)]; ok {
		score += between(rng, r)
	}

	for _, rule := range tuning.SizeRules {
		if rule.Matches(file.Size) {
			score += between(rng, rule.Delta)
			break
		}
	}

	score += between(rng, cfg.Jitter)
	return cfg.ScoreClamp.Clamp(score)
}

// Reconcile clamps the score and derives the verdict from it, so that
// IsFake == (Score >= FakeThreshold) always holds. The second return value
// reports whether the intended verdict had to be overridden.
func Reconcile(cfg *domain.AnalyzerConfig, r domain.ScoreResult) (domain.ScoreResult, bool) {
	r.Score = cfg.ScoreClamp.Clamp(r.Score)
	isFake := cfg.IsFake(r.Score)
	overridden := isFake != r.IsFake
	r.IsFake = isFake
	return r, overridden
}
