package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"dataproc/internal/errors"
)

// Format is a file extension accepted for an input, including the dot
type Format string

// Input formats
const (
	FormatCSV  Format = ".csv"
	FormatXLSX Format = ".xlsx"
	FormatXLSM Format = ".xlsm"
	FormatJSON Format = ".json"
	FormatText Format = ".txt"
)

// Accepted formats per kind of input
var (
	TableFormats       = []Format{FormatCSV}
	WorkbookFormats    = []Format{FormatXLSX, FormatXLSM}
	ObservationFormats = []Format{FormatJSON}
	TextFormats        = []Format{FormatText}
)

// FileValidator checks input files and output directories before the use
// cases touch them.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks that path exists, is a regular file and can be opened
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Debug("File does not exist", slog.String("file", path))
		return errors.NewNotFoundError(fmt.Sprintf("file %s", path)).WithContext("path", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewStorageError("failed to stat file", err).WithContext("path", path)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file", slog.String("path", path))
		return errors.NewMalformedInputError(fmt.Sprintf("%s is a directory, not a file", path), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewStorageError("file is not readable", err).WithContext("path", path)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateFormat validates the file and checks its extension against
// formats. Office lock files (~$name) are rejected.
func (v *FileValidator) ValidateFormat(path string, formats ...Format) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	base := filepath.Base(path)
	if strings.HasPrefix(base, "~$") {
		v.logger.Warn("Temporary office file", slog.String("file", path))
		return errors.NewMalformedInputError(fmt.Sprintf("%s is a temporary office file", base), nil)
	}

	ext := Format(strings.ToLower(filepath.Ext(path)))
	if len(formats) > 0 && !slices.Contains(formats, ext) {
		v.logger.Warn("Unexpected file format",
			slog.String("file", path),
			slog.String("extension", string(ext)),
			slog.Any("accepted", formats))
		return errors.NewMalformedInputError(
			fmt.Sprintf("%s has extension %q, expected one of %v", base, ext, formats), nil).
			WithContext("path", path)
	}

	return nil
}

// ValidateOutputDirectory creates dir if needed and proves it is writable
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError("failed to create output directory", err).WithContext("directory", dir)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError("output directory is not writable", err).WithContext("directory", dir)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated", slog.String("directory", dir))
	return nil
}
