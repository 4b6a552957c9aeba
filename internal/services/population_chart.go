package services

import (
	"context"
	"fmt"
	"log/slog"

	"dataproc/internal/config"
	"dataproc/internal/dataprocessing"
	"dataproc/internal/errors"
	"dataproc/internal/files"
	"dataproc/internal/render"
)

// ChartRenderer draws a line chart into an image file
type ChartRenderer interface {
	RenderLineChart(chart render.LineChart, path string) error
}

// PopulationChartService draws one country's population trend from the
// global population CSV.
type PopulationChartService struct {
	cfg      config.PopulationConfig
	files    *files.Manager
	renderer ChartRenderer
	logger   *slog.Logger
}

// NewPopulationChartService creates a new population chart service
func NewPopulationChartService(cfg config.PopulationConfig, fm *files.Manager, renderer ChartRenderer, logger *slog.Logger) *PopulationChartService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PopulationChartService{
		cfg:      cfg,
		files:    fm,
		renderer: renderer,
		logger:   logger.With("component", "population_chart_service"),
	}
}

// UseCase implements Service
func (s *PopulationChartService) UseCase() UseCase {
	return UseCasePopulationChart
}

// Run implements Service
func (s *PopulationChartService) Run(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return failed(s.UseCase(), err)
	}

	chart, err := s.BuildChart(ctx)
	if err != nil {
		return failed(s.UseCase(), err)
	}

	result := Result{UseCase: s.UseCase()}
	name := s.cfg.ChartFile()
	path := s.files.OutputPath(name)

	err = s.files.EnsureOutputDirectory()
	if err == nil {
		if rerr := s.renderer.RenderLineChart(chart, path); rerr != nil {
			err = errors.NewStorageError("failed to render chart", rerr).WithContext("path", path)
		}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Chart not written", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		s.logger.InfoContext(ctx, "Population trend chart saved", slog.String("path", path))
	}
	result.addArtifact(name, path, err)

	return result
}

// BuildChart loads the population table and derives the chart for the
// configured country. An unknown country yields NOT_FOUND.
func (s *PopulationChartService) BuildChart(ctx context.Context) (render.LineChart, error) {
	path, err := s.files.RequireFile(s.cfg.InputFile)
	if err != nil {
		return render.LineChart{}, err
	}

	table, err := dataprocessing.LoadCSV(path)
	if err != nil {
		return render.LineChart{}, err
	}

	country, err := dataprocessing.FilterByKey(table, s.cfg.KeyColumn, dataprocessing.String(s.cfg.Country))
	if err != nil {
		return render.LineChart{}, err
	}
	for _, column := range []string{s.cfg.TimeColumn, s.cfg.ValueColumn} {
		if !table.HasColumn(column) {
			return render.LineChart{}, errors.NewMalformedInputError(
				fmt.Sprintf("column %q not present", column), nil).
				WithContext("columns", table.Columns)
		}
	}
	if country.Empty() {
		return render.LineChart{}, errors.NewNotFoundError(fmt.Sprintf("data for country %q", s.cfg.Country)).
			WithContext("country", s.cfg.Country)
	}

	peak, ok := dataprocessing.MaxOf(country, s.cfg.ValueColumn)
	if !ok {
		return render.LineChart{}, errors.NewNoQualifyingDataError(s.cfg.ValueColumn)
	}

	unit := dataprocessing.UnitScale(peak)
	s.logger.InfoContext(ctx, "Population unit set",
		slog.String("unit", string(unit)),
		slog.Float64("max_value", peak))

	points := make([]render.Point, 0, country.Len())
	for _, row := range country.Rows {
		x, okX := row[s.cfg.TimeColumn].Float64()
		y, okY := row[s.cfg.ValueColumn].Float64()
		if !okX || !okY {
			continue
		}
		points = append(points, render.Point{X: x, Y: y / unit.Divisor()})
	}

	return render.LineChart{
		Title:  fmt.Sprintf("Population Trend for %s", s.cfg.Country),
		XLabel: s.cfg.TimeColumn,
		YLabel: fmt.Sprintf("Population (%s)", unit.Title()),
		Points: points,
	}, nil
}
