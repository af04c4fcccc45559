package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths_ResolvesRelativeEntries(t *testing.T) {
	chTempDir(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := NewPaths(PathsConfig{
		DataDir:    "data",
		ReportsDir: filepath.Join(wd, "custom-reports"),
		LogsDir:    "logs",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "data"), p.DataDir)
	assert.Equal(t, filepath.Join(wd, "custom-reports"), p.ReportsDir)
	assert.Equal(t, filepath.Join(wd, "reports", "run.json"),
		(&Paths{ReportsDir: filepath.Join(wd, "reports")}).ReportPath("run.json"))
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := &Paths{
		DataDir:    filepath.Join(base, "data"),
		ReportsDir: filepath.Join(base, "reports"),
		LogsDir:    filepath.Join(base, "logs"),
	}

	require.NoError(t, p.EnsureDirectories())
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
