package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/realitycheck/realitycheck/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "realitycheck dev")
}

func TestPhasesCommand(t *testing.T) {
	out, err := run(t, "phases", "--kind", "video")
	require.NoError(t, err)
	assert.Contains(t, out, "Analyzing facial landmarks...")
	assert.Contains(t, out, "100%")

	out, err = run(t, "phases", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Analyzing image patterns..."`)

	_, err = run(t, "phases", "--kind", "audio")
	assert.Error(t, err)
}

func TestConfigValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("fake_threshold: 80\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("fake_treshold: 80\n"), 0o644))

	out, err := run(t, "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.yaml is valid")

	_, err = run(t, "config", "validate", bad)
	assert.Error(t, err)

	_, err = run(t, "config", "validate", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigShowCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".realitycheck.yaml"), []byte("fake_threshold: 80\n"), 0o644))

	out, err := run(t, "config", "show", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "fake ≥ 80")

	out, err = run(t, "config", "show", "--config", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"fake_threshold": 80`)
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := run(t, "history", "--config", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No analysis history found.")
}
