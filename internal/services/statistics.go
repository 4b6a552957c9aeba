package services

import (
	"context"
	"log/slog"

	"dataproc/internal/config"
	"dataproc/internal/dataprocessing"
	"dataproc/internal/exporter"
	"dataproc/internal/files"
)

// StatisticsService summarises a JSON observation series into a three line
// text report.
type StatisticsService struct {
	cfg        config.StatisticsConfig
	files      *files.Manager
	text       *exporter.TextWriter
	summarizer *dataprocessing.Summarizer
	logger     *slog.Logger
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(cfg config.StatisticsConfig, fm *files.Manager, text *exporter.TextWriter, logger *slog.Logger) *StatisticsService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "statistics_service")

	return &StatisticsService{
		cfg:   cfg,
		files: fm,
		text:  text,
		summarizer: dataprocessing.NewSummarizer(logger, dataprocessing.SummarizerConfig{
			ValueField: cfg.ValueField,
			LabelField: cfg.LabelField,
			Subject:    cfg.Subject,
		}),
		logger: logger,
	}
}

// UseCase implements Service
func (s *StatisticsService) UseCase() UseCase {
	return UseCasePopulationStatistics
}

// Run implements Service
func (s *StatisticsService) Run(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return failed(s.UseCase(), err)
	}

	report, err := s.Report(ctx)
	if err != nil {
		return failed(s.UseCase(), err)
	}

	result := Result{UseCase: s.UseCase()}
	path, err := s.text.WriteLines(s.cfg.OutputFile, s.summarizer.Lines(report))
	result.addArtifact(s.cfg.OutputFile, path, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Statistics report not written", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		s.logger.InfoContext(ctx, "Statistics saved", slog.String("path", path))
	}

	return result
}

// Report loads the observation series and computes its statistics
func (s *StatisticsService) Report(ctx context.Context) (dataprocessing.StatisticsReport, error) {
	path, err := s.files.RequireFile(s.cfg.InputFile)
	if err != nil {
		return dataprocessing.StatisticsReport{}, err
	}

	s.logger.InfoContext(ctx, "Reading observations", slog.String("path", path))
	records, err := dataprocessing.LoadObservations(path)
	if err != nil {
		return dataprocessing.StatisticsReport{}, err
	}

	return s.summarizer.Summarize(records)
}
