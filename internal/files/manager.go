package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dataproc/internal/config"
	"dataproc/internal/errors"
)

// Manager provides file management operations over the fetched (input) and
// processed (output) directories.
type Manager struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewManager creates a new file manager instance
func NewManager(paths *config.Paths, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{paths: paths, logger: logger}
}

// Paths returns the directories the manager resolves against
func (m *Manager) Paths() *config.Paths {
	return m.paths
}

// FileExists checks if a regular file exists at the given path
func (m *Manager) FileExists(path string) bool {
	info, err := os.Stat(path)
	exists := err == nil && !info.IsDir()

	m.logger.Debug("FileExists check",
		slog.String("path", path),
		slog.Bool("exists", exists))

	return exists
}

// RequireFile resolves an input file name inside the fetched directory and
// fails with a NOT_FOUND error when it is absent.
func (m *Manager) RequireFile(name string) (string, error) {
	fullPath := m.InputPath(name)

	info, err := os.Stat(fullPath)
	switch {
	case err != nil && os.IsNotExist(err):
		return fullPath, errors.NewNotFoundError(fmt.Sprintf("input file %s", name)).
			WithContext("path", fullPath)
	case err != nil:
		return fullPath, errors.NewStorageError("failed to stat input file", err).
			WithContext("path", fullPath)
	case info.IsDir():
		return fullPath, errors.NewMalformedInputError(fmt.Sprintf("%s is a directory", name), nil).
			WithContext("path", fullPath)
	}

	return fullPath, nil
}

// ReadText reads a required input file as text
func (m *Manager) ReadText(name string) (string, error) {
	fullPath, err := m.RequireFile(name)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", errors.NewStorageError("failed to read input file", err).
			WithContext("path", fullPath)
	}
	return string(data), nil
}

// InputPath returns the location of a fetched input file
func (m *Manager) InputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return m.paths.GetInputPath(name)
}

// OutputPath returns the location of a processed artifact
func (m *Manager) OutputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return m.paths.GetOutputPath(name)
}

// EnsureOutputDirectory creates the processed directory if it doesn't exist
func (m *Manager) EnsureOutputDirectory() error {
	m.logger.Debug("Ensuring directory exists",
		slog.String("path", m.paths.ProcessedDir))

	if err := os.MkdirAll(m.paths.ProcessedDir, 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err).
			WithContext("path", m.paths.ProcessedDir)
	}
	return nil
}
