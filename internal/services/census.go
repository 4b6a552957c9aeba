package services

import (
	"context"
	"log/slog"

	"dataproc/internal/config"
	"dataproc/internal/dataprocessing"
	"dataproc/internal/exporter"
	"dataproc/internal/files"
)

// CensusService cleans the annual penguin census spreadsheet and reports each
// species' population change between two years. The change report is
// computed from the cleaned copy, so a failed clean step stops the use case.
type CensusService struct {
	cfg    config.CensusConfig
	files  *files.Manager
	excel  *exporter.ExcelWriter
	csv    *exporter.CSVWriter
	logger *slog.Logger
}

// NewCensusService creates a new census service
func NewCensusService(cfg config.CensusConfig, fm *files.Manager, excel *exporter.ExcelWriter, csv *exporter.CSVWriter, logger *slog.Logger) *CensusService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CensusService{
		cfg:    cfg,
		files:  fm,
		excel:  excel,
		csv:    csv,
		logger: logger.With("component", "census_service"),
	}
}

// UseCase implements Service
func (s *CensusService) UseCase() UseCase {
	return UseCasePenguinCensus
}

// Run implements Service
func (s *CensusService) Run(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return failed(s.UseCase(), err)
	}

	result := Result{UseCase: s.UseCase()}

	cleaned, err := s.Clean(ctx)
	if err != nil {
		result.Err = err
		return result
	}
	path, err := s.excel.WriteSheet(s.cfg.CleanedFile, s.cfg.Sheet, cleaned.Columns, cleaned.Cells(cleaned.Columns...))
	result.addArtifact(s.cfg.CleanedFile, path, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Cleaned census not written", slog.String("path", path), slog.String("error", err.Error()))
		return result
	}
	s.logger.InfoContext(ctx, "Cleaned YEAR column and saved workbook", slog.String("path", path))

	change, err := s.PopulationChange(ctx, path)
	if err != nil {
		result.Err = err
		return result
	}

	headers := []string{
		s.cfg.EntityLabel,
		dataprocessing.TimeColumnName(s.cfg.StartYear),
		dataprocessing.TimeColumnName(s.cfg.EndYear),
		s.cfg.ChangeColumn,
	}
	path, err = s.csv.WriteSimpleCSV(s.cfg.OutputFile, headers, change.Select(headers...))
	result.addArtifact(s.cfg.OutputFile, path, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Population change not written", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		s.logger.InfoContext(ctx, "Population changes saved", slog.String("path", path), slog.Int("species", change.Len()))
	}

	return result
}

// Clean loads the raw census, trims and upper-cases the headers and keeps
// the first four digits of the year column as an integer.
func (s *CensusService) Clean(ctx context.Context) (*dataprocessing.Table, error) {
	path, err := s.files.RequireFile(s.cfg.InputFile)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Reading census workbook", slog.String("path", path))
	raw, err := dataprocessing.LoadExcel(path, s.cfg.Sheet)
	if err != nil {
		return nil, err
	}

	return dataprocessing.CleanYearColumn(
		dataprocessing.NormalizeColumns(raw, dataprocessing.UpperTrim),
		s.cfg.YearColumn)
}

// PopulationChange reads a cleaned workbook and computes end minus start
// for every species column.
func (s *CensusService) PopulationChange(ctx context.Context, cleanedPath string) (*dataprocessing.Table, error) {
	s.logger.InfoContext(ctx, "Reading cleaned workbook", slog.String("path", cleanedPath))
	cleaned, err := dataprocessing.LoadExcel(cleanedPath, s.cfg.Sheet)
	if err != nil {
		return nil, err
	}
	cleaned = dataprocessing.NormalizeColumns(cleaned, dataprocessing.UpperTrim)

	s.logger.InfoContext(ctx, "Filtering census years",
		slog.Int("start_year", s.cfg.StartYear),
		slog.Int("end_year", s.cfg.EndYear))

	wide, err := dataprocessing.PivotByTime(cleaned, dataprocessing.PivotOptions{
		TimeColumn:  s.cfg.YearColumn,
		Allowed:     s.cfg.Allowed(),
		EntityLabel: s.cfg.EntityLabel,
	})
	if err != nil {
		return nil, err
	}

	return dataprocessing.ComputeDelta(wide,
		dataprocessing.TimeColumnName(s.cfg.StartYear),
		dataprocessing.TimeColumnName(s.cfg.EndYear),
		s.cfg.ChangeColumn)
}
