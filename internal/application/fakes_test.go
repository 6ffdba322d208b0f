package application_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/decoder"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/eventbus"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/filesource"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/random"
	"github.com/realitycheck/realitycheck/internal/application"
	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/stretchr/testify/require"
)

// recordingSleeper returns immediately and remembers every requested delay.
// When cancelAt > 0 the call with that 1-based index fails as cancelled.
type recordingSleeper struct {
	mu       sync.Mutex
	delays   []time.Duration
	cancelAt int
	cancel   context.CancelFunc
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	n := len(s.delays)
	s.mu.Unlock()
	if s.cancelAt > 0 && n == s.cancelAt && s.cancel != nil {
		s.cancel()
	}
	return ctx.Err()
}

func (s *recordingSleeper) calls() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

// gatedSleeper blocks its gateAt-th call until released.
type gatedSleeper struct {
	mu      sync.Mutex
	n       int
	gateAt  int
	reached chan struct{}
	release chan struct{}
}

func newGatedSleeper(gateAt int) *gatedSleeper {
	return &gatedSleeper{gateAt: gateAt, reached: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	s.mu.Lock()
	s.n++
	n := s.n
	s.mu.Unlock()
	if n == s.gateAt {
		close(s.reached)
		select {
		case <-s.release:
		case <-ctx.Done():
		}
	}
	return ctx.Err()
}

type recorder struct {
	mu     sync.Mutex
	events []domain.ProgressEvent
}

func (r *recorder) observe(e domain.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) percentages() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Percentage)
	}
	return out
}

func newService(sleeper domain.Sleeper, seed uint64) *application.AnalyzeService {
	logger := slog.New(slog.DiscardHandler)
	return application.NewAnalyzeService(
		domain.DefaultConfig(),
		decoder.New(),
		sleeper,
		random.Seeded(seed),
		eventbus.Factory(logger),
		logger,
	)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func pngFile(t *testing.T, name string, w, h int) domain.FileDescriptor {
	t.Helper()
	return filesource.DescribeBytes(name, "image/png", pngBytes(t, w, h))
}

func videoFile(name string, size int64) domain.FileDescriptor {
	return domain.FileDescriptor{Name: name, MIMEType: "video/mp4", Size: size}
}
