package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Use case outcome labels
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// RunMetrics records the outcome of each use case in a batch run
type RunMetrics struct {
	useCaseRuns     metric.Int64Counter
	artifacts       metric.Int64Counter
	useCaseDuration metric.Float64Histogram
}

// NewRunMetrics creates the run instruments on meter
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	useCaseRuns, err := meter.Int64Counter(
		"dataproc_use_case_runs",
		metric.WithDescription("Total number of use case runs by outcome"),
	)
	if err != nil {
		return nil, err
	}

	artifacts, err := meter.Int64Counter(
		"dataproc_artifacts",
		metric.WithDescription("Total number of artifacts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	useCaseDuration, err := meter.Float64Histogram(
		"dataproc_use_case_duration",
		metric.WithDescription("Use case duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RunMetrics{
		useCaseRuns:     useCaseRuns,
		artifacts:       artifacts,
		useCaseDuration: useCaseDuration,
	}, nil
}

// RecordUseCase records one finished use case. A nil receiver is a no-op.
func (m *RunMetrics) RecordUseCase(ctx context.Context, useCase string, failed bool, written, failedArtifacts int, d time.Duration) {
	if m == nil {
		return
	}

	status := StatusOK
	if failed {
		status = StatusFailed
	}
	useCaseAttr := attribute.String("use_case", useCase)

	m.useCaseRuns.Add(ctx, 1, metric.WithAttributes(useCaseAttr, attribute.String("status", status)))
	if written > 0 {
		m.artifacts.Add(ctx, int64(written), metric.WithAttributes(useCaseAttr, attribute.String("status", StatusOK)))
	}
	if failedArtifacts > 0 {
		m.artifacts.Add(ctx, int64(failedArtifacts), metric.WithAttributes(useCaseAttr, attribute.String("status", StatusFailed)))
	}
	m.useCaseDuration.Record(ctx, d.Seconds(), metric.WithAttributes(useCaseAttr))
}
