package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the directories the toolkit writes to.
type Paths struct {
	DataDir    string
	ReportsDir string
	LogsDir    string
}

// NewPaths builds absolute paths from the configuration, resolving relative
// entries against the working directory.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return &Paths{
		DataDir:    resolve(wd, cfg.DataDir),
		ReportsDir: resolve(wd, cfg.ReportsDir),
		LogsDir:    resolve(wd, cfg.LogsDir),
	}, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// EnsureDirectories creates every managed directory that does not exist yet.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ReportPath returns the path of a report file under the reports directory.
func (p *Paths) ReportPath(name string) string {
	return filepath.Join(p.ReportsDir, name)
}

// LogPath returns the path of a log file under the logs directory.
func (p *Paths) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
