package domain

import (
	"context"
	"time"
)

// RandomSource supplies the draws behind every simulated value.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// Sleeper paces the progress phases. Sleep returns ctx.Err() when the
// context ends before d elapses.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// DimensionDecoder resolves the natural pixel dimensions of an image.
type DimensionDecoder interface {
	DecodeDimensions(file FileDescriptor) (Dimensions, error)
}

// ConfigLoader loads analyzer tuning from a directory.
type ConfigLoader interface {
	Load(dir string) (AnalyzerConfig, error)
}

// MediaScanner finds media files under a directory.
type MediaScanner interface {
	Scan(root string, excludeDirs ...string) (*ScanResult, error)
}

// FileDescriber turns a path into a FileDescriptor.
type FileDescriber interface {
	Describe(path string) (FileDescriptor, error)
}

// AnalysisHistory persists completed analyses under a directory.
type AnalysisHistory interface {
	Save(dir string, entry HistoryEntry) error
	Load(dir string) ([]HistoryEntry, error)
}

// ProgressBus broadcasts progress events of a single analysis.
type ProgressBus interface {
	Subscribe(observer ProgressObserver) error
	// Publish never waits for observers.
	Publish(event ProgressEvent)
	// Drain blocks until every published event has been handled or ctx ends.
	Drain(ctx context.Context) error
	// Close refuses further subscribers once the analysis is over.
	Close()
}
