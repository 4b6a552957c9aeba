package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"dataproc/internal/config"
	"dataproc/internal/exporter"
	"dataproc/internal/files"
	"dataproc/internal/infrastructure"
	"dataproc/internal/render"
	"dataproc/internal/services"
	"dataproc/internal/validation"
)

// DefaultLogFile is used when file logging is enabled without a path
const DefaultLogFile = "dataproc.log"

// Application represents the main application container
type Application struct {
	Config    *config.Config
	Paths     *config.Paths
	Logger    *slog.Logger
	Files     *files.Manager
	Telemetry *infrastructure.Telemetry
	Validator *validation.FileValidator
	Services  *ServiceContainer
}

// ServiceContainer holds one service per use case
type ServiceContainer struct {
	PopulationChart *services.PopulationChartService
	Census          *services.CensusService
	Statistics      *services.StatisticsService
	WordFrequency   *services.WordFrequencyService
}

// All returns the services in their canonical run order
func (c *ServiceContainer) All() []services.Service {
	return []services.Service{c.PopulationChart, c.Census, c.Statistics, c.WordFrequency}
}

// Get returns the service for useCase
func (c *ServiceContainer) Get(useCase services.UseCase) (services.Service, bool) {
	for _, svc := range c.All() {
		if svc.UseCase() == useCase {
			return svc, true
		}
	}
	return nil, false
}

// NewApplication loads the configuration at configPath (empty for the
// default lookup), installs the global logger and wires every service.
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	resolveOutputFiles(cfg, paths)

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion))

	return New(cfg, paths, logger)
}

// New wires an application from an already loaded configuration. It creates
// the output directories and starts telemetry; call Shutdown when done.
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}

	logger.Info("Ensuring required directories exist")
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}
	paths.LogPathResolution(logger)

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateOutputDirectory(paths.ProcessedDir); err != nil {
		return nil, fmt.Errorf("failed to validate output directory: %w", err)
	}

	telemetry, err := infrastructure.InitializeTelemetry(infrastructure.TelemetryOptionsFromConfig(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	app := &Application{
		Config:    cfg,
		Paths:     paths,
		Logger:    logger,
		Files:     files.NewManager(paths, logger),
		Telemetry: telemetry,
		Validator: validator,
	}
	app.initializeServices()

	return app, nil
}

// initializeServices builds the writers, renderers and use case services
func (a *Application) initializeServices() {
	csvWriter := exporter.NewCSVWriter(a.Paths, a.Logger)
	excelWriter := exporter.NewExcelWriter(a.Paths, a.Logger)
	textWriter := exporter.NewTextWriter(a.Paths, a.Logger)

	pop := a.Config.Population
	chartRenderer := render.NewChartRenderer(pop.ChartWidth, pop.ChartHeight, a.Logger)

	wc := a.Config.WordCloud
	cloudRenderer := render.NewCloudRenderer(render.CloudOptions{
		WidthPt:     wc.Width,
		HeightPt:    wc.Height,
		MinFontSize: wc.MinFontSize,
		MaxFontSize: wc.MaxFontSize,
		MaxWords:    wc.MaxWords,
	}, a.Logger)

	a.Services = &ServiceContainer{
		PopulationChart: services.NewPopulationChartService(pop, a.Files, chartRenderer, a.Logger),
		Census:          services.NewCensusService(a.Config.Census, a.Files, excelWriter, csvWriter, a.Logger),
		Statistics:      services.NewStatisticsService(a.Config.Statistics, a.Files, textWriter, a.Logger),
		WordFrequency:   services.NewWordFrequencyService(wc, a.Files, csvWriter, cloudRenderer, a.Logger),
	}
}

// CheckInputs logs which input files are present, checks the format of
// those that are, and returns the names of the missing ones. Neither kind
// of problem is fatal; the affected use cases report it when they run.
func (a *Application) CheckInputs(ctx context.Context) []string {
	expected := []struct {
		name    string
		formats []validation.Format
	}{
		{a.Config.Population.InputFile, validation.TableFormats},
		{a.Config.Census.InputFile, validation.WorkbookFormats},
		{a.Config.Statistics.InputFile, validation.ObservationFormats},
		{a.Config.WordCloud.InputFile, validation.TextFormats},
	}

	names := make([]string, len(expected))
	for i, e := range expected {
		names[i] = e.name
	}
	inventory := a.Files.Inventory(names...)
	a.Files.LogInventory(inventory)

	invalid := 0
	for i, fi := range inventory {
		if !fi.Exists {
			continue
		}
		if err := a.Validator.ValidateFormat(fi.Path, expected[i].formats...); err != nil {
			invalid++
		}
	}

	missing := files.Missing(inventory)
	a.Logger.InfoContext(ctx, "Input check complete",
		slog.Int("expected", len(inventory)),
		slog.Int("missing", len(missing)),
		slog.Int("invalid", invalid))
	return missing
}

// Run executes one use case inside its own span, logs the outcome and
// records it in the run metrics. A panicking service is reported as a
// failed result.
func (a *Application) Run(ctx context.Context, svc services.Service) (result services.Result) {
	ctx = infrastructure.EnsureTraceID(ctx)
	useCase := string(svc.UseCase())
	logger := infrastructure.WithUseCase(a.Logger, useCase)

	ctx, span := a.Telemetry.StartUseCase(ctx, useCase)
	start := time.Now()
	logger.InfoContext(ctx, "Use case started")

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Use case panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
			result = services.Result{UseCase: svc.UseCase(), Err: fmt.Errorf("panic: %v", r)}
		}

		elapsed := time.Since(start)
		a.Telemetry.Metrics.RecordUseCase(ctx, useCase, result.Failed(), result.WrittenCount(), result.FailedCount(), elapsed)
		infrastructure.EndSpan(span, resultError(result))

		if result.Failed() {
			logger.ErrorContext(ctx, "Use case finished with errors",
				slog.Any("result", result),
				slog.Duration("duration", elapsed))
		} else {
			logger.InfoContext(ctx, "Use case completed",
				slog.Any("result", result),
				slog.Duration("duration", elapsed))
		}
	}()

	return svc.Run(ctx)
}

// RunUseCase runs the service registered for useCase
func (a *Application) RunUseCase(ctx context.Context, useCase services.UseCase) (services.Result, error) {
	svc, ok := a.Services.Get(useCase)
	if !ok {
		return services.Result{}, fmt.Errorf("unknown use case %q", useCase)
	}
	return a.Run(ctx, svc), nil
}

// RunAll runs every use case, at most Run.Parallelism at a time. Use cases
// are independent: a failure in one never cancels the others. Results are
// returned in canonical order.
func (a *Application) RunAll(ctx context.Context) []services.Result {
	ctx = infrastructure.EnsureTraceID(ctx)
	all := a.Services.All()
	results := make([]services.Result, len(all))

	var g errgroup.Group
	g.SetLimit(a.Config.Run.Parallelism)
	for i, svc := range all {
		g.Go(func() error {
			results[i] = a.Run(ctx, svc)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	a.Logger.InfoContext(ctx, "All use cases finished",
		slog.Int("total", len(results)),
		slog.Int("failed", failed))

	return results
}

// Shutdown flushes telemetry and closes the log file
func (a *Application) Shutdown(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	var err error
	if a.Telemetry != nil {
		err = a.Telemetry.Shutdown(ctx)
		if err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down telemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	if cerr := infrastructure.CloseLogFile(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// resolveOutputFiles anchors relative log, metrics and trace files in the
// logs directory.
func resolveOutputFiles(cfg *config.Config, paths *config.Paths) {
	if cfg.Logging.Output != "console" && cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = DefaultLogFile
	}
	cfg.Logging.FilePath = anchorLogFile(paths, cfg.Logging.FilePath)
	cfg.Telemetry.MetricsFile = anchorLogFile(paths, cfg.Telemetry.MetricsFile)
	cfg.Telemetry.TraceFile = anchorLogFile(paths, cfg.Telemetry.TraceFile)
}

func anchorLogFile(paths *config.Paths, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return paths.GetLogPath(name)
}

func resultError(r services.Result) error {
	if r.Err != nil {
		return r.Err
	}
	if n := r.FailedCount(); n > 0 {
		return fmt.Errorf("%d artifact(s) not written", n)
	}
	return nil
}
