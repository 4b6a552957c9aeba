package exporter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"dataproc/internal/config"
	"dataproc/internal/errors"
)

// DefaultSheet is the sheet name used when none is given
const DefaultSheet = "Sheet1"

// ExcelWriter writes single-sheet workbooks
type ExcelWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewExcelWriter creates a new workbook writer. Relative file names are
// resolved inside the processed directory.
func NewExcelWriter(paths *config.Paths, logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{paths: paths, logger: logger}
}

// WriteSheet writes headers followed by rows into a fresh workbook. Cells
// holding nil are left blank.
func (w *ExcelWriter) WriteSheet(filePath, sheet string, headers []string, rows [][]any) (string, error) {
	fullPath := resolvePath(w.paths, filePath)
	if sheet == "" {
		sheet = DefaultSheet
	}

	w.logger.Info("Writing workbook",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.String("sheet", sheet),
		slog.Int("record_count", len(rows)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fullPath, errors.NewStorageError("failed to create directory", err).WithContext("path", fullPath)
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return fullPath, errors.NewStorageError("failed to name sheet", err).WithContext("sheet", sheet)
		}
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fullPath, errors.NewStorageError("failed to open sheet stream", err).WithContext("sheet", sheet)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fullPath, errors.NewStorageError("failed to write header row", err).WithContext("path", fullPath)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fullPath, errors.NewStorageError("invalid row", err).WithContext("row", i)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fullPath, errors.NewStorageError("failed to write row", err).WithContext("row", i)
		}
	}

	if err := sw.Flush(); err != nil {
		return fullPath, errors.NewStorageError("failed to flush sheet", err).WithContext("path", fullPath)
	}
	if err := f.SaveAs(fullPath); err != nil {
		return fullPath, errors.NewStorageError("failed to save workbook", err).WithContext("path", fullPath)
	}

	return fullPath, nil
}
