package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPhases = []int{10, 25, 40, 60, 75, 90, 100}

func TestAnalyze_EmitsPhasesInOrder(t *testing.T) {
	sleeper := &recordingSleeper{}
	svc := newService(sleeper, 1)
	rec := &recorder{}

	report, err := svc.Analyze(context.Background(), pngFile(t, "holiday.png", 8, 6), rec.observe)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, allPhases, rec.percentages())
	assert.Equal(t, "Analyzing image patterns...", rec.events[2].Status)

	delays := sleeper.calls()
	require.Len(t, delays, len(allPhases))
	for _, d := range delays {
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, time.Second)
	}
}

func TestAnalyze_VideoPhaseWordingAndDelays(t *testing.T) {
	sleeper := &recordingSleeper{}
	rec := &recorder{}

	_, err := newService(sleeper, 2).Analyze(context.Background(), videoFile("clip.mp4", 4096), rec.observe)
	require.NoError(t, err)

	require.Len(t, rec.events, len(allPhases))
	assert.Equal(t, "Analyzing facial landmarks...", rec.events[2].Status)
	for _, d := range sleeper.calls() {
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestAnalyze_MultipleObservers(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	_, err := newService(&recordingSleeper{}, 3).Analyze(context.Background(), videoFile("clip.mp4", 10), a.observe, b.observe)
	require.NoError(t, err)
	assert.Equal(t, allPhases, a.percentages())
	assert.Equal(t, allPhases, b.percentages())
}

func TestAnalyze_NoObservers(t *testing.T) {
	report, err := newService(&recordingSleeper{}, 4).Analyze(context.Background(), videoFile("clip.mp4", 10))
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestAnalyze_CancelledBetweenPhases(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sleeper := &recordingSleeper{cancelAt: 3, cancel: cancel}
	rec := &recorder{}

	report, err := newService(sleeper, 5).Analyze(ctx, videoFile("clip.mp4", 10), rec.observe)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
	// a cancelled run does not wait for delivery
	assert.Eventually(t, func() bool { return len(rec.percentages()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{10, 25, 40}, rec.percentages())
}

func TestAnalyze_SlowObserverDoesNotPacePhases(t *testing.T) {
	sleeper := &recordingSleeper{}
	release := make(chan struct{})
	rec := &recorder{}
	blocked := func(e domain.ProgressEvent) {
		<-release
		rec.observe(e)
	}

	a := newService(sleeper, 12).Start(context.Background(), videoFile("clip.mp4", 10), blocked)
	require.Eventually(t, func() bool { return len(sleeper.calls()) == len(allPhases) }, 2*time.Second, 5*time.Millisecond)
	assert.Empty(t, rec.percentages())

	close(release)
	report, err := a.Wait()
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, allPhases, rec.percentages())
}

func TestAnalyze_CancelWhileObserverBlocked(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sleeper := &recordingSleeper{}
	release := make(chan struct{})
	defer close(release)

	a := newService(sleeper, 13).Start(ctx, videoFile("clip.mp4", 10), func(domain.ProgressEvent) { <-release })
	require.Eventually(t, func() bool { return len(sleeper.calls()) == len(allPhases) }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("analysis did not finish after cancel while an observer was blocked")
	}
	report, err := a.Wait()
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_SubscribeAfterEndFails(t *testing.T) {
	a := newService(&recordingSleeper{}, 14).Start(context.Background(), videoFile("clip.mp4", 10))
	_, err := a.Wait()
	require.NoError(t, err)
	assert.Error(t, a.Subscribe((&recorder{}).observe))
}

func TestAnalyze_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}

	_, err := newService(&recordingSleeper{}, 6).Analyze(ctx, videoFile("clip.mp4", 10), rec.observe)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Empty(t, rec.percentages())
}

func TestAnalyze_DeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := newService(&recordingSleeper{}, 7).Analyze(ctx, videoFile("clip.mp4", 10))
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnalyze_InvalidInputEmitsNothing(t *testing.T) {
	tests := []struct {
		name string
		file domain.FileDescriptor
	}{
		{"negative size", domain.FileDescriptor{Name: "a.png", MIMEType: "image/png", Size: -1}},
		{"not media", domain.FileDescriptor{Name: "a.pdf", MIMEType: "application/pdf", Size: 10}},
		{"not allowed", domain.FileDescriptor{Name: "a.bmp", MIMEType: "image/bmp", Size: 10}},
		{"too large", domain.FileDescriptor{Name: "a.mp4", MIMEType: "video/mp4", Size: 51 * 1024 * 1024}},
		{"empty name", domain.FileDescriptor{MIMEType: "image/png", Size: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sleeper := &recordingSleeper{}
			rec := &recorder{}
			report, err := newService(sleeper, 8).Analyze(context.Background(), tt.file, rec.observe)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, report)
			assert.Empty(t, rec.percentages())
			assert.Empty(t, sleeper.calls())
		})
	}
}

func TestAnalyze_SameSeedSameReport(t *testing.T) {
	file := videoFile("interview.webm", 2*1024*1024)
	file.MIMEType = "video/webm"

	first, err := newService(&recordingSleeper{}, 99).Analyze(context.Background(), file)
	require.NoError(t, err)
	second, err := newService(&recordingSleeper{}, 99).Analyze(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_LateSubscriberSeesRemainingPhases(t *testing.T) {
	sleeper := newGatedSleeper(3)
	early, late := &recorder{}, &recorder{}

	a := newService(sleeper, 10).Start(context.Background(), videoFile("clip.mp4", 10), early.observe)
	<-sleeper.reached
	require.NoError(t, a.Subscribe(late.observe))
	close(sleeper.release)

	report, err := a.Wait()
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, allPhases, early.percentages())
	assert.Equal(t, []int{60, 75, 90, 100}, late.percentages())
	assert.NotEmpty(t, a.ID)

	select {
	case <-a.Done():
	default:
		t.Fatal("Done should be closed after Wait returns")
	}
}

func TestAnalyze_NilObserverFailsStart(t *testing.T) {
	_, err := newService(&recordingSleeper{}, 11).Analyze(context.Background(), videoFile("clip.mp4", 10), nil)
	assert.Error(t, err)
}

func TestAnalyze_ConcurrentAnalysesAreIndependent(t *testing.T) {
	svc := newService(&recordingSleeper{}, 12)
	const n = 8

	var wg sync.WaitGroup
	recs := make([]*recorder, n)
	reports := make([]*domain.Report, n)
	errs := make([]error, n)
	for i := range n {
		recs[i] = &recorder{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[i], errs[i] = svc.Analyze(context.Background(), videoFile("clip.mp4", int64(100+i)), recs[i].observe)
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, allPhases, recs[i].percentages())
		assert.Equal(t, "clip.mp4", reports[i].Metadata.Filename)
	}
}

func TestAnalyze_ImageMetadata(t *testing.T) {
	report, err := newService(&recordingSleeper{}, 13).Analyze(context.Background(), pngFile(t, "holiday.png", 64, 48))
	require.NoError(t, err)

	md := report.Metadata
	assert.Equal(t, domain.Platform, md.Platform)
	assert.Equal(t, "holiday.png", md.Filename)
	assert.Equal(t, "PNG", md.Format)
	assert.Equal(t, "64 × 48", md.Dimensions)
	assert.Empty(t, md.Duration)
	assert.Contains(t, md.Filesize, "bytes")
}

func TestAnalyze_DecodeFailureYieldsUnknown(t *testing.T) {
	file := domain.FileDescriptor{Name: "broken.png", MIMEType: "image/png", Size: 7}
	report, err := newService(&recordingSleeper{}, 14).Analyze(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownDimensions, report.Metadata.Dimensions)
}

func TestAnalyze_VideoMetadataSynthesized(t *testing.T) {
	report, err := newService(&recordingSleeper{}, 15).Analyze(context.Background(), videoFile("clip.mp4", 5_242_880))
	require.NoError(t, err)

	md := report.Metadata
	assert.Equal(t, "MP4", md.Format)
	assert.Equal(t, "5.00 MB", md.Filesize)
	assert.Regexp(t, `^\d+ × \d+$`, md.Dimensions)
	assert.Regexp(t, `^[0-3]:[0-5]\d$`, md.Duration)
}

func TestAnalyze_KeywordVerdicts(t *testing.T) {
	fake, err := newService(&recordingSleeper{}, 16).Analyze(context.Background(), pngFile(t, "deepfake_portrait.png", 4, 4))
	require.NoError(t, err)
	assert.True(t, fake.IsFake)
	assert.GreaterOrEqual(t, fake.Score, 75)
	assert.LessOrEqual(t, fake.Score, 98)
	assert.Len(t, fake.Anomalies, 4)
	assert.False(t, fake.TechnicalDetails.Empty())

	authentic, err := newService(&recordingSleeper{}, 17).Analyze(context.Background(), videoFile("realphoto.mp4", 10))
	require.NoError(t, err)
	assert.False(t, authentic.IsFake)
	assert.GreaterOrEqual(t, authentic.Score, 5)
	assert.LessOrEqual(t, authentic.Score, 25)
	assert.GreaterOrEqual(t, authentic.Confidence, 88)
	assert.LessOrEqual(t, authentic.Confidence, 98)
}

func TestAnalyze_VerdictMatchesScoreAcrossSeeds(t *testing.T) {
	files := []domain.FileDescriptor{
		videoFile("clip.mp4", 10),
		videoFile("clip.mp4", 30*1024*1024),
		{Name: "tiny.webp", MIMEType: "image/webp", Size: 512},
		{Name: "big.jpg", MIMEType: "image/jpeg", Size: 6 * 1024 * 1024},
	}
	for seed := range uint64(50) {
		for _, f := range files {
			report, err := newService(&recordingSleeper{}, seed).Analyze(context.Background(), f)
			require.NoError(t, err)
			assert.Equal(t, report.Score >= 70, report.IsFake, "seed %d file %s", seed, f.Name)
			assert.GreaterOrEqual(t, report.Score, 5)
			assert.LessOrEqual(t, report.Score, 98)
			switch {
			case report.Score >= 70:
				assert.Len(t, report.Anomalies, 4)
			case report.Score >= 30:
				assert.Len(t, report.Anomalies, 2)
			default:
				assert.LessOrEqual(t, len(report.Anomalies), 1)
			}
		}
	}
}
