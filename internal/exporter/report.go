package exporter

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"

	"dataproc/internal/config"
	"dataproc/internal/errors"
)

// TextWriter writes line-oriented plain text reports
type TextWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewTextWriter creates a new text report writer
func NewTextWriter(paths *config.Paths, logger *slog.Logger) *TextWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextWriter{paths: paths, logger: logger}
}

// WriteLines writes each line followed by a newline, replacing the file
func (w *TextWriter) WriteLines(filePath string, lines []string) (string, error) {
	fullPath := resolvePath(w.paths, filePath)

	w.logger.Info("Writing text report",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("line_count", len(lines)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fullPath, errors.NewStorageError("failed to create directory", err).WithContext("path", fullPath)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fullPath, errors.NewStorageError("failed to create file", err).WithContext("path", fullPath)
	}

	bw := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			file.Close()
			return fullPath, errors.NewStorageError("failed to write report", err).WithContext("path", fullPath)
		}
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fullPath, errors.NewStorageError("failed to flush report", err).WithContext("path", fullPath)
	}
	if err := file.Close(); err != nil {
		return fullPath, errors.NewStorageError("failed to close report", err).WithContext("path", fullPath)
	}

	return fullPath, nil
}
