package domain

import (
	"fmt"
	"strings"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Clamp pins v into the range.
func (r Range) Clamp(v int) int { return max(r.Min, min(r.Max, v)) }

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %d is greater than max %d", name, r.Min, r.Max)
	}
	return nil
}

func (r Range) validatePercent(name string) error {
	if err := r.validate(name); err != nil {
		return err
	}
	if r.Min < 0 || r.Max > 100 {
		return fmt.Errorf("%s: [%d, %d] must lie within 0-100", name, r.Min, r.Max)
	}
	return nil
}

// SizeRule adjusts the base score when a file is larger than Above or
// smaller than Below bytes. Exactly one bound is set.
type SizeRule struct {
	Above int64 `yaml:"above,omitempty" json:"above,omitempty"`
	Below int64 `yaml:"below,omitempty" json:"below,omitempty"`
	Delta Range `yaml:"delta"           json:"delta"`
}

// Matches reports whether the rule applies to a file of the given size.
func (s SizeRule) Matches(size int64) bool {
	if s.Above > 0 {
		return size > s.Above
	}
	return size < s.Below
}

// KindTuning holds the per-media-kind constants of the scorer and emitter.
type KindTuning struct {
	BaseScore  int              `yaml:"base_score" json:"base_score"`
	Extensions map[string]Range `yaml:"extensions" json:"extensions"`
	// SizeRules are evaluated in order; the first match applies.
	SizeRules []SizeRule `yaml:"size_rules" json:"size_rules"`
	DelayMS   Range      `yaml:"delay_ms"   json:"delay_ms"`
}

// AnalyzerConfig holds every tunable constant of the simulated analysis,
// loaded from .realitycheck.yaml over DefaultConfig.
type AnalyzerConfig struct {
	FakeThreshold   int   `yaml:"fake_threshold"   json:"fake_threshold"`
	MediumThreshold int   `yaml:"medium_threshold" json:"medium_threshold"`
	ScoreClamp      Range `yaml:"score_clamp"      json:"score_clamp"`

	FakeKeywords   []string `yaml:"fake_keywords"   json:"fake_keywords"`
	RealKeywords   []string `yaml:"real_keywords"   json:"real_keywords"`
	FakeScore      Range    `yaml:"fake_score"      json:"fake_score"`
	FakeConfidence Range    `yaml:"fake_confidence" json:"fake_confidence"`
	RealScore      Range    `yaml:"real_score"      json:"real_score"`
	RealConfidence Range    `yaml:"real_confidence" json:"real_confidence"`

	Image KindTuning `yaml:"image" json:"image"`
	Video KindTuning `yaml:"video" json:"video"`

	Jitter              Range `yaml:"jitter"                json:"jitter"`
	Confidence          Range `yaml:"confidence"            json:"confidence"`
	FakeConfidenceFloor int   `yaml:"fake_confidence_floor" json:"fake_confidence_floor"`

	LowTierProbability float64 `yaml:"low_tier_probability" json:"low_tier_probability"`

	// MaxFileSize of 0 disables the size limit.
	MaxFileSize int64 `yaml:"max_file_size" json:"max_file_size"`
	// AllowedTypes empty accepts any image/* or video/* type.
	AllowedTypes []string `yaml:"allowed_types" json:"allowed_types"`
}

const (
	kib = 1024
	mib = 1024 * kib
)

// DefaultConfig returns the reference tuning.
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		FakeThreshold:   70,
		MediumThreshold: 30,
		ScoreClamp:      Range{Min: 5, Max: 98},

		FakeKeywords: []string{
			"fake", "deep", "synthetic", "ai", "generated",
			"gan", "stylegan", "midjourney", "dalle", "diffusion",
		},
		RealKeywords:   []string{"real", "genuine", "original", "authentic", "photo", "camera"},
		FakeScore:      Range{Min: 75, Max: 98},
		FakeConfidence: Range{Min: 85, Max: 98},
		RealScore:      Range{Min: 5, Max: 25},
		RealConfidence: Range{Min: 88, Max: 98},

		Image: KindTuning{
			BaseScore: 35,
			Extensions: map[string]Range{
				"png":  {Min: -5, Max: 20},
				"jpg":  {Min: -10, Max: 15},
				"jpeg": {Min: -10, Max: 15},
				"webp": {Min: 5, Max: 25},
			},
			SizeRules: []SizeRule{
				{Above: 5 * mib, Delta: Range{Min: -15, Max: -5}},
				{Below: 100 * kib, Delta: Range{Min: 5, Max: 15}},
			},
			DelayMS: Range{Min: 500, Max: 1000},
		},
		Video: KindTuning{
			BaseScore: 30,
			Extensions: map[string]Range{
				"mp4":  {Min: -5, Max: 15},
				"mov":  {Min: -10, Max: 10},
				"webm": {Min: 0, Max: 20},
			},
			SizeRules: []SizeRule{
				{Above: 20 * mib, Delta: Range{Min: -15, Max: -5}},
			},
			DelayMS: Range{Min: 500, Max: 1500},
		},

		Jitter:              Range{Min: -15, Max: 15},
		Confidence:          Range{Min: 60, Max: 95},
		FakeConfidenceFloor: 70,
		LowTierProbability:  0.3,

		MaxFileSize: 50 * mib,
		AllowedTypes: []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
			"video/mp4", "video/quicktime", "video/webm",
		},
	}
}

// Tuning returns the constants for a media kind. Anything that is not an
// image is tuned as video.
func (c AnalyzerConfig) Tuning(kind MediaKind) KindTuning {
	if kind == MediaImage {
		return c.Image
	}
	return c.Video
}

// TierFor buckets a score by the configured thresholds.
func (c AnalyzerConfig) TierFor(score int) Tier {
	switch {
	case score >= c.FakeThreshold:
		return TierHigh
	case score >= c.MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// IsFake applies the verdict threshold.
func (c AnalyzerConfig) IsFake(score int) bool { return score >= c.FakeThreshold }

// IsAllowedType reports whether a MIME type passes the allow-list.
func (c AnalyzerConfig) IsAllowedType(mimeType string) bool {
	if len(c.AllowedTypes) == 0 {
		return true
	}
	mt := baseMIME(mimeType)
	for _, t := range c.AllowedTypes {
		if strings.EqualFold(t, mt) {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c AnalyzerConfig) Validate() error {
	if c.MediumThreshold <= 0 || c.MediumThreshold >= c.FakeThreshold || c.FakeThreshold > 100 {
		return fmt.Errorf("thresholds must satisfy 0 < medium_threshold (%d) < fake_threshold (%d) <= 100",
			c.MediumThreshold, c.FakeThreshold)
	}

	percents := map[string]Range{
		"score_clamp":     c.ScoreClamp,
		"fake_score":      c.FakeScore,
		"fake_confidence": c.FakeConfidence,
		"real_score":      c.RealScore,
		"real_confidence": c.RealConfidence,
		"confidence":      c.Confidence,
	}
	for name, r := range percents {
		if err := r.validatePercent(name); err != nil {
			return err
		}
	}
	if err := c.Jitter.validate("jitter"); err != nil {
		return err
	}

	if len(c.FakeKeywords) == 0 {
		return fmt.Errorf("fake_keywords must not be empty")
	}
	if len(c.RealKeywords) == 0 {
		return fmt.Errorf("real_keywords must not be empty")
	}
	for _, kw := range append(append([]string{}, c.FakeKeywords...), c.RealKeywords...) {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keywords must not contain blank entries")
		}
	}

	if !c.Confidence.Contains(c.FakeConfidenceFloor) {
		return fmt.Errorf("fake_confidence_floor %d must lie within confidence [%d, %d]",
			c.FakeConfidenceFloor, c.Confidence.Min, c.Confidence.Max)
	}
	if c.LowTierProbability < 0 || c.LowTierProbability > 1 {
		return fmt.Errorf("low_tier_probability must be between 0.0 and 1.0 (got %.2f)", c.LowTierProbability)
	}

	for _, kt := range []struct {
		name string
		t    KindTuning
	}{{"image", c.Image}, {"video", c.Video}} {
		if err := kt.t.validate(kt.name); err != nil {
			return err
		}
	}

	if c.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be >= 0 (got %d)", c.MaxFileSize)
	}
	for _, t := range c.AllowedTypes {
		if KindOf(t) == "" {
			return fmt.Errorf("allowed_types entry %q is not an image or video type", t)
		}
	}

	return nil
}

func (k KindTuning) validate(kind string) error {
	if k.BaseScore < 0 || k.BaseScore > 100 {
		return fmt.Errorf("%s.base_score must be between 0 and 100 (got %d)", kind, k.BaseScore)
	}
	for ext, r := range k.Extensions {
		if ext == "" || strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%s.extensions key %q must be a bare extension", kind, ext)
		}
		if err := r.validate(fmt.Sprintf("%s.extensions[%s]", kind, ext)); err != nil {
			return err
		}
	}
	for i, sr := range k.SizeRules {
		if (sr.Above > 0) == (sr.Below > 0) {
			return fmt.Errorf("%s.size_rules[%d] must set exactly one of above or below", kind, i)
		}
		if err := sr.Delta.validate(fmt.Sprintf("%s.size_rules[%d].delta", kind, i)); err != nil {
			return err
		}
	}
	if k.DelayMS.Min < 0 {
		return fmt.Errorf("%s.delay_ms.min must be >= 0 (got %d)", kind, k.DelayMS.Min)
	}
	return k.DelayMS.validate(kind + ".delay_ms")
}

func baseMIME(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
