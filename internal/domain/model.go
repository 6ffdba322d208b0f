package domain

import (
	"io"
	"strings"
)

// Platform is the analyzer label stamped on every report.
const Platform = "RealityCheck Analyzer"

// MediaKind classifies a file by the category part of its MIME type.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// KindOf returns the media kind for a MIME type, or "" when the category
// is neither image nor video.
func KindOf(mimeType string) MediaKind {
	category, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(mimeType)), "/")
	switch category {
	case "image":
		return MediaImage
	case "video":
		return MediaVideo
	default:
		return ""
	}
}

// ContentSource gives lazy access to the bytes behind a FileDescriptor.
type ContentSource interface {
	Open() (io.ReadCloser, error)
}

// Dimensions are natural pixel dimensions.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FileDescriptor describes the file submitted for analysis. It is never
// retained or mutated by the analyzer.
type FileDescriptor struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`

	// Dimensions, when known up front, skip decoding.
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	// Source is optional; without it image dimensions resolve to "Unknown".
	Source ContentSource `json:"-"`
}

func (f FileDescriptor) Kind() MediaKind { return KindOf(f.MIMEType) }

// Severity grades an anomaly.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ScoreResult is the raw output of the heuristic scorer.
type ScoreResult struct {
	Score      int  `json:"score"`
	IsFake     bool `json:"isFake"`
	Confidence int  `json:"confidence"`
}

// Anomaly is a named, severity-tagged simulated finding.
type Anomaly struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Confidence  int      `json:"confidence"`
}

// TechnicalDetails groups the categorized technical findings.
type TechnicalDetails struct {
	Inconsistencies    []string `json:"inconsistencies"`
	Artifacts          []string `json:"artifacts"`
	ManipulationTraces []string `json:"manipulationTraces"`
}

// Empty reports whether all three lists are empty.
func (t TechnicalDetails) Empty() bool {
	return len(t.Inconsistencies) == 0 && len(t.Artifacts) == 0 && len(t.ManipulationTraces) == 0
}

// Metadata is the display metadata attached to a report.
type Metadata struct {
	Platform   string `json:"platform"`
	Filename   string `json:"filename"`
	Filesize   string `json:"filesize"`
	Dimensions string `json:"dimensions,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Format     string `json:"format"`
}

// Report is the single output of an analysis.
type Report struct {
	Score            int              `json:"score"`
	IsFake           bool             `json:"isFake"`
	Confidence       int              `json:"confidence"`
	Anomalies        []Anomaly        `json:"anomalies"`
	Metadata         Metadata         `json:"metadata"`
	TechnicalDetails TechnicalDetails `json:"technicalDetails"`
}

// Phase is one step of the simulated progress sequence.
type Phase struct {
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
}

// ProgressEvent is broadcast once per phase.
type ProgressEvent struct {
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
}

// ProgressObserver receives progress events in phase order.
type ProgressObserver func(ProgressEvent)

// Tier buckets a score into the finding tiers.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// VerdictFor returns the human verdict label for a score.
func VerdictFor(score int, cfg AnalyzerConfig) string {
	switch cfg.TierFor(score) {
	case TierHigh:
		return "Likely Deepfake"
	case TierMedium:
		return "Potentially Modified"
	default:
		return "Likely Authentic"
	}
}

// HistoryEntry records one completed analysis.
type HistoryEntry struct {
	Timestamp  string `json:"timestamp"`
	AnalysisID string `json:"analysis_id"`
	Filename   string `json:"filename"`
	Format     string `json:"format"`
	Score      int    `json:"score"`
	IsFake     bool   `json:"is_fake"`
	Verdict    string `json:"verdict"`
}

// ScanResult lists the media candidates found under a directory.
type ScanResult struct {
	RootPath string `json:"root_path"`
	// MediaFiles are relative to RootPath, in lexical order.
	MediaFiles []string `json:"media_files"`
	Skipped    int      `json:"skipped"`
}

// BatchItem is the outcome of analyzing one file of a directory scan.
type BatchItem struct {
	Path   string  `json:"path"`
	Report *Report `json:"report,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// BatchReport collects the outcomes of a directory scan.
type BatchReport struct {
	RootPath string      `json:"root_path"`
	Items    []BatchItem `json:"items"`
	Analyzed int         `json:"analyzed"`
	Failed   int         `json:"failed"`
	Flagged  int         `json:"flagged"`
}
