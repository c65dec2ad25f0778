package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDecodesYAMLDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	contents := "width: 16\nheight: 16\nmines: 40\ncount: 50\njobs: 4\nno_guess: true\noutput_dir: out\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, d.Width)
	require.Equal(t, 16, d.Height)
	require.Equal(t, 40, d.Mines)
	require.Equal(t, 50, d.Count)
	require.Equal(t, 4, d.Jobs)
	require.True(t, d.NoGuess)
	require.Equal(t, "out", d.OutputDir)
}

func TestLoadReturnsErrorForMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
