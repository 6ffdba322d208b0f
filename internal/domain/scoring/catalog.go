package scoring

import "github.com/realitycheck/realitycheck/internal/domain"

type anomalyTemplate struct {
	name        string
	description string
	severity    domain.Severity
	confidence  domain.Range
}

type detailsTemplate struct {
	inconsistencies    []string
	artifacts          []string
	manipulationTraces []string
}

// ── High tier ──

var highAnomalies = map[domain.MediaKind][]anomalyTemplate{
	domain.MediaImage: {
		{
			name:        "Facial proportion inconsistencies",
			description: "Abnormal facial features or proportions not following natural human patterns.",
			severity:    domain.SeverityHigh,
			confidence:  domain.Range{Min: 85, Max: 98},
		},
		{
			name:        "Texture irregularities",
			description: "Unnatural skin texture or areas with inconsistent detail level.",
			severity:    domain.SeverityHigh,
			confidence:  domain.Range{Min: 80, Max: 95},
		},
		{
			name:        "Background-subject mismatch",
			description: "Lighting or perspective inconsistencies between subject and background.",
			severity:    domain.SeverityMedium,
			confidence:  domain.Range{Min: 75, Max: 90},
		},
		{
			name:        "Artifacts around facial features",
			description: "Blurring, warping or unusual patterns around eyes, mouth, or hair.",
			severity:    domain.SeverityMedium,
			confidence:  domain.Range{Min: 70, Max: 90},
		},
	},
	domain.MediaVideo: {
		{
			name:        "Facial feature inconsistencies",
			description: "Unnatural facial proportions and expressions that don't follow normal human patterns.",
			severity:    domain.SeverityHigh,
			confidence:  domain.Range{Min: 85, Max: 98},
		},
		{
			name:        "Irregular lighting patterns",
			description: "Lighting inconsistencies across the face and unusual shadows.",
			severity:    domain.SeverityMedium,
			confidence:  domain.Range{Min: 75, Max: 95},
		},
		{
			name:        "Unusual blinking patterns",
			description: "Abnormal eye movements and blinking behavior not typical of natural video.",
			severity:    domain.SeverityHigh,
			confidence:  domain.Range{Min: 80, Max: 97},
		},
		{
			name:        "Edge artifacts around face",
			description: "Blurring or artifacts around facial boundaries and hair.",
			severity:    domain.SeverityMedium,
			confidence:  domain.Range{Min: 70, Max: 90},
		},
	},
}

var highDetails = map[domain.MediaKind]detailsTemplate{
	domain.MediaImage: {
		inconsistencies: []string{
			"Pixel value distribution anomalies",
			"Inconsistent noise patterns across image regions",
			"Lighting vector inconsistencies on facial surfaces",
			"Statistical pattern deviations in color channels",
		},
		artifacts: []string{
			"Unnatural edge sharpness in key areas",
			"Inconsistent JPEG compression artifacts",
			"Abnormal color distribution in skin tones",
			"Grid-like pattern artifacts typical of GAN-generated images",
		},
		manipulationTraces: []string{
			"GAN signature patterns detected",
			"Statistical image generation markers present",
			"Neural synthesis artifact indicators",
			"Frequency domain manipulation traces",
			"AI model fingerprint patterns identified",
		},
	},
	domain.MediaVideo: {
		inconsistencies: []string{
			"Irregular facial texture patterns",
			"Unusual interpolation between facial expressions",
			"Lighting vector inconsistencies on skin surfaces",
			"Temporal motion anomalies in facial movements",
		},
		artifacts: []string{
			"Compression anomalies in high-detail areas",
			"Frame discontinuities in motion transitions",
			"Unusual noise distribution patterns in skin tones",
			"Boundary artifacts around moving face parts",
		},
		manipulationTraces: []string{
			"GAN pattern signature detected",
			"Neural rendering artifacts present",
			"Frequency domain manipulation indicators",
			"Temporal inconsistencies in motion flow",
			"Face-swapping algorithmic fingerprints",
		},
	},
}

// ── Medium tier ──

var mediumAnomalies = map[domain.MediaKind][]anomalyTemplate{
	domain.MediaImage: {
		{
			name:        "Potential minor manipulations",
			description: "Some elements of the image may have been altered or enhanced.",
			severity:    domain.SeverityMedium,
			confidence:  domain.Range{Min: 60, Max: 85},
		},
		{
			name:        "Unusual visual patterns",
			description: "Some unusual patterns detected that could indicate editing.",
			severity:    domain.SeverityLow,
			confidence:  domain.Range{Min: 50, Max: 75},
		},
	},
	domain.MediaVideo: {
		{
			name:        "Potential minor manipulations",
			description: "Some elements of the video may have been altered or enhanced.",
			severity:    domain.SeverityMedium,
			confidence:  domain.Range{Min: 60, Max: 85},
		},
		{
			name:        "Temporal inconsistencies",
			description: "Slight timing issues in motion or facial expressions.",
			severity:    domain.SeverityLow,
			confidence:  domain.Range{Min: 50, Max: 75},
		},
	},
}

var mediumDetails = map[domain.MediaKind]detailsTemplate{
	domain.MediaImage: {
		inconsistencies: []string{
			"Minor color balance inconsistencies",
			"Possible touch-up artifacts in specific regions",
		},
		artifacts: []string{
			"Localized anomalies in texture patterns",
			"Subtle compression artifacts in specific areas",
		},
		manipulationTraces: []string{
			"Low-confidence manipulation indicators",
			"Minor statistical anomalies in pixel distributions",
		},
	},
	domain.MediaVideo: {
		inconsistencies: []string{
			"Minor motion inconsistencies",
			"Possible audio-visual sync issues",
		},
		artifacts: []string{
			"Localized compression artifacts",
			"Subtle frame transition issues",
		},
		manipulationTraces: []string{
			"Low-confidence manipulation indicators",
			"Minor statistical anomalies in frame sequences",
		},
	},
}

// ── Low tier ──

var lowAnomaly = map[domain.MediaKind]anomalyTemplate{
	domain.MediaImage: {
		name:        "Common digital processing",
		description: "Normal digital processing artifacts consistent with standard cameras and software.",
		severity:    domain.SeverityLow,
		confidence:  domain.Range{Min: 30, Max: 60},
	},
	domain.MediaVideo: {
		name:        "Common compression artifacts",
		description: "Normal compression artifacts consistent with standard video recording.",
		severity:    domain.SeverityLow,
		confidence:  domain.Range{Min: 30, Max: 60},
	},
}

var lowArtifacts = map[domain.MediaKind][]string{
	domain.MediaImage: {
		"Standard compression artifacts",
		"Normal noise patterns consistent with digital sensors",
	},
	domain.MediaVideo: {
		"Standard video compression artifacts",
		"Normal noise patterns consistent with digital video sensors",
	},
}
