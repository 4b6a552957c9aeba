package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains the resolved directories every use case reads from and
// writes to.
type Paths struct {
	BaseDir      string
	FetchedDir   string
	ProcessedDir string
	LogsDir      string
}

// ResolvePaths turns the configured directories into absolute paths.
// Relative directories are anchored at BaseDir, or at the working directory
// when no base is configured.
func (c *Config) ResolvePaths() (*Paths, error) {
	base := c.Paths.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}

	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	return NewPaths(base, c.Paths.FetchedDir, c.Paths.ProcessedDir, c.Paths.LogsDir), nil
}

// NewPaths anchors the relative directories at base. Absolute directories
// are kept as given.
func NewPaths(base, fetched, processed, logs string) *Paths {
	anchor := func(dir string) string {
		if filepath.IsAbs(dir) {
			return filepath.Clean(dir)
		}
		return filepath.Join(base, dir)
	}

	return &Paths{
		BaseDir:      base,
		FetchedDir:   anchor(fetched),
		ProcessedDir: anchor(processed),
		LogsDir:      anchor(logs),
	}
}

// EnsureDirectories creates the output directories if they don't exist.
// The fetched directory is input only and never created.
func (p *Paths) EnsureDirectories() error {
	logger := slog.Default()

	for _, dir := range []string{p.ProcessedDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		logger.Debug("Ensured directory exists", slog.String("directory", dir))
	}

	return nil
}

// GetInputPath returns the full path of a fetched input file
func (p *Paths) GetInputPath(filename string) string {
	return filepath.Join(p.FetchedDir, filename)
}

// GetOutputPath returns the full path of a processed artifact
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.ProcessedDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// LogPathResolution logs all resolved paths for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("Path resolution",
		slog.String("base_dir", p.BaseDir),
		slog.String("fetched_dir", p.FetchedDir),
		slog.String("processed_dir", p.ProcessedDir),
		slog.String("logs_dir", p.LogsDir))
}
