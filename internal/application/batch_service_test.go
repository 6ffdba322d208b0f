package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/filesource"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/scanner"
	"github.com/realitycheck/realitycheck/internal/application"
	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMediaTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write := func(rel string, data []byte) {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, data, 0o644))
	}
	data := pngBytes(t, 16, 16)
	write("deepfake.png", data)
	write("album/realphoto.png", data)
	write("album/broken.jpg", []byte("this is plain text"))
	write("notes.txt", []byte("ignored"))
	return root
}

func newBatch(sleeper domain.Sleeper) *application.BatchService {
	return application.NewBatchService(newService(sleeper, 21), scanner.New(), filesource.Describer{}, nil)
}

func TestBatch_AnalyzesEveryMediaFile(t *testing.T) {
	root := writeMediaTree(t)

	report, err := newBatch(&recordingSleeper{}).AnalyzeDir(context.Background(), root, 2)
	require.NoError(t, err)

	require.Len(t, report.Items, 3)
	assert.Equal(t, filepath.Join("album", "broken.jpg"), report.Items[0].Path)
	assert.Equal(t, filepath.Join("album", "realphoto.png"), report.Items[1].Path)
	assert.Equal(t, "deepfake.png", report.Items[2].Path)

	assert.Contains(t, report.Items[0].Error, "invalid input")
	assert.Nil(t, report.Items[0].Report)
	require.NotNil(t, report.Items[1].Report)
	assert.False(t, report.Items[1].Report.IsFake)
	require.NotNil(t, report.Items[2].Report)
	assert.True(t, report.Items[2].Report.IsFake)

	assert.Equal(t, 2, report.Analyzed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Flagged)
}

func TestBatch_EmptyDirectory(t *testing.T) {
	report, err := newBatch(&recordingSleeper{}).AnalyzeDir(context.Background(), t.TempDir(), 4)
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.Zero(t, report.Analyzed)
}

func TestBatch_CancelledAbortsBatch(t *testing.T) {
	root := writeMediaTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newBatch(&recordingSleeper{}).AnalyzeDir(ctx, root, 1)
	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestBatch_MissingRoot(t *testing.T) {
	_, err := newBatch(&recordingSleeper{}).AnalyzeDir(context.Background(), filepath.Join(t.TempDir(), "nope"), 1)
	assert.Error(t, err)
}
