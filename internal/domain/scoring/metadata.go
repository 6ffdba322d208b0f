package scoring

import (
	"fmt"
	"strings"

	"github.com/realitycheck/realitycheck/internal/domain"
)

var (
	videoWidth   = domain.Range{Min: 720, Max: 1920}
	videoHeight  = domain.Range{Min: 480, Max: 1080}
	videoMinutes = domain.Range{Min: 0, Max: 3}
	videoSeconds = domain.Range{Min: 1, Max: 59}
)

// FormatFileSize renders a byte count as bytes, KB or MB with two decimals.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d bytes", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	}
}

// FormatOf returns the uppercased MIME subtype, e.g. image/png → PNG.
func FormatOf(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	_, sub, _ := strings.Cut(strings.TrimSpace(mt), "/")
	return strings.ToUpper(sub)
}

// FormatDimensions renders pixel dimensions as "W × H".
func FormatDimensions(d domain.Dimensions) string {
	return fmt.Sprintf("%d × %d", d.Width, d.Height)
}

// SynthesizeVideo invents display dimensions and an M:SS duration for a
// video, since nothing is decoded from video content.
func SynthesizeVideo(rng domain.RandomSource) (dimensions, duration string) {
	minutes := between(rng, videoMinutes)
	seconds := between(rng, videoSeconds)
	duration = fmt.Sprintf("%d:%02d", minutes, seconds)
	dimensions = FormatDimensions(domain.Dimensions{
		Width:  between(rng, videoWidth),
		Height: between(rng, videoHeight),
	})
	return dimensions, duration
}
