package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"

	"dataproc/internal/config"
)

const (
	// InstrumentationName names the tracer and meter
	InstrumentationName = "dataproc"
)

// TelemetryOptions holds OpenTelemetry configuration for a batch run.
// Empty file paths disable the corresponding export.
type TelemetryOptions struct {
	ServiceName    string
	ServiceVersion string
	MetricsFile    string
	TraceFile      string
}

// Telemetry holds the providers for one process run. Metrics are collected
// into a private Prometheus registry and written as a textfile on Shutdown.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	Metrics        *RunMetrics
	Logger         *slog.Logger

	registry    *prometheus.Registry
	metricsFile string
	traceFile   *os.File
}

// TelemetryOptionsFromConfig maps the telemetry section of the config.
func TelemetryOptionsFromConfig(cfg config.TelemetryConfig) TelemetryOptions {
	return TelemetryOptions{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: config.AppVersion,
		MetricsFile:    cfg.MetricsFile,
		TraceFile:      cfg.TraceFile,
	}
}

// InitializeTelemetry sets up tracing and metrics for a run
func InitializeTelemetry(opts TelemetryOptions, logger *slog.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = GetLogger()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = config.AppName
	}
	if opts.ServiceVersion == "" {
		opts.ServiceVersion = config.AppVersion
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(opts.ServiceName),
		semconv.ServiceVersion(opts.ServiceVersion),
	)

	t := &Telemetry{
		Logger:      logger,
		registry:    prometheus.NewRegistry(),
		metricsFile: opts.MetricsFile,
	}

	if err := t.initializeTracing(opts, res); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if err := t.initializeMetrics(opts, res); err != nil {
		_ = t.closeTraceFile()
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Debug("Telemetry initialized",
		slog.String("service", opts.ServiceName),
		slog.String("metrics_file", opts.MetricsFile),
		slog.String("trace_file", opts.TraceFile))

	return t, nil
}

// initializeTracing exports spans as JSON to the trace file, if one is set
func (t *Telemetry) initializeTracing(opts TelemetryOptions, res *resource.Resource) error {
	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	if opts.TraceFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.TraceFile), 0755); err != nil {
			return fmt.Errorf("failed to create trace directory: %w", err)
		}
		f, err := os.Create(opts.TraceFile)
		if err != nil {
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(f))
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to create trace exporter: %w", err)
		}
		t.traceFile = f
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
	}

	t.TracerProvider = sdktrace.NewTracerProvider(tpOpts...)
	t.Tracer = t.TracerProvider.Tracer(InstrumentationName, trace.WithInstrumentationVersion(opts.ServiceVersion))
	return nil
}

// initializeMetrics bridges the OTel meter into the private registry
func (t *Telemetry) initializeMetrics(opts TelemetryOptions, res *resource.Resource) error {
	exporter, err := otelprom.New(
		otelprom.WithRegisterer(t.registry),
		otelprom.WithoutScopeInfo(),
		otelprom.WithoutTargetInfo(),
	)
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	t.MeterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	t.Meter = t.MeterProvider.Meter(InstrumentationName, metric.WithInstrumentationVersion(opts.ServiceVersion))

	t.Metrics, err = NewRunMetrics(t.Meter)
	return err
}

// Registry exposes the Prometheus registry the run's metrics are collected in
func (t *Telemetry) Registry() *prometheus.Registry {
	return t.registry
}

// StartUseCase opens a span covering one use case
func (t *Telemetry) StartUseCase(ctx context.Context, useCase string) (context.Context, trace.Span) {
	ctx, span := t.Tracer.Start(ctx, "use_case."+useCase,
		trace.WithAttributes(attribute.String("use_case", useCase)))
	if traceID := GetTraceID(ctx); traceID != "" {
		span.SetAttributes(attribute.String("trace_id", traceID))
	}
	return ctx, span
}

// EndSpan closes span, marking it failed when err is non-nil
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Shutdown flushes spans, writes the metrics textfile and releases the
// providers. All steps run even if an earlier one fails.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.TracerProvider != nil {
		if err := t.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}
	if err := t.closeTraceFile(); err != nil {
		errs = append(errs, fmt.Errorf("trace file close: %w", err))
	}

	if t.metricsFile != "" {
		if err := os.MkdirAll(filepath.Dir(t.metricsFile), 0755); err != nil {
			errs = append(errs, fmt.Errorf("metrics directory: %w", err))
		} else if err := prometheus.WriteToTextfile(t.metricsFile, t.registry); err != nil {
			errs = append(errs, fmt.Errorf("metrics textfile: %w", err))
		}
	}

	if t.MeterProvider != nil {
		if err := t.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("opentelemetry shutdown errors: %v", errs)
	}

	t.Logger.DebugContext(ctx, "Telemetry shutdown complete")
	return nil
}

func (t *Telemetry) closeTraceFile() error {
	if t.traceFile == nil {
		return nil
	}
	err := t.traceFile.Close()
	t.traceFile = nil
	return err
}
