package scoring

import (
	"slices"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// GenerateFindings produces the anomalies and technical details for a
// score. Wording depends on the media kind; anything that is not an image
// gets the video wording.
func GenerateFindings(
	cfg *domain.AnalyzerConfig,
	rng domain.RandomSource,
	score int,
	kind domain.MediaKind,
) ([]domain.Anomaly, domain.TechnicalDetails) {
	if kind != domain.MediaImage {
		kind = domain.MediaVideo
	}

	switch cfg.TierFor(score) {
	case domain.TierHigh:
		return drawAnomalies(rng, highAnomalies[kind]), highDetails[kind].build()
	case domain.TierMedium:
		return drawAnomalies(rng, mediumAnomalies[kind]), mediumDetails[kind].build()
	}

	// Keeps authentic verdicts from all looking identically empty.
	if chance(rng, cfg.LowTierProbability) {
		anomalies := drawAnomalies(rng, []anomalyTemplate{lowAnomaly[kind]})
		details := detailsTemplate{artifacts: lowArtifacts[kind]}.build()
		return anomalies, details
	}
	return []domain.Anomaly{}, detailsTemplate{}.build()
}

func drawAnomalies(rng domain.RandomSource, templates []anomalyTemplate) []domain.Anomaly {
	out := make([]domain.Anomaly, 0, len(templates))
	for _, t := range templates {
		out = append(out, domain.Anomaly{
			Name:        t.name,
			Description: t.description,
			Severity:    t.severity,
			Confidence:  between(rng, t.confidence),
		})
	}
	return out
}

// build copies the template lists so reports never share backing arrays
// with the catalog. Missing lists become empty, not nil.
func (d detailsTemplate) build() domain.TechnicalDetails {
	return domain.TechnicalDetails{
		Inconsistencies:    cloneOrEmpty(d.inconsistencies),
		Artifacts:          cloneOrEmpty(d.artifacts),
		ManipulationTraces: cloneOrEmpty(d.manipulationTraces),
	}
}

func cloneOrEmpty(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return slices.Clone(s)
}
