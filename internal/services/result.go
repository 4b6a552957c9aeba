package services

import (
	"context"
	"log/slog"
)

// UseCase names one independent extraction-and-transform routine
type UseCase string

// Use cases
const (
	UseCasePopulationChart      UseCase = "population_chart"
	UseCasePenguinCensus        UseCase = "penguin_census"
	UseCasePopulationStatistics UseCase = "population_statistics"
	UseCaseWordFrequency        UseCase = "word_frequency"
)

// Service runs one use case to completion. Run never panics on bad input;
// every failure is reported through the Result.
type Service interface {
	UseCase() UseCase
	Run(ctx context.Context) Result
}

// Artifact is one output file a use case tried to write
type Artifact struct {
	Name string
	Path string
	Err  error
}

// Written reports whether the artifact was produced
func (a Artifact) Written() bool {
	return a.Err == nil
}

// Result is the uniform outcome of a use case. Err is set when the use case
// stopped before producing its artifacts; a failed write only marks the
// artifact it belongs to.
type Result struct {
	UseCase   UseCase
	Artifacts []Artifact
	Err       error
}

// Failed reports whether the use case or any of its artifacts failed
func (r Result) Failed() bool {
	return r.Err != nil || r.FailedCount() > 0
}

// WrittenCount returns the number of artifacts produced
func (r Result) WrittenCount() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Written() {
			n++
		}
	}
	return n
}

// FailedCount returns the number of artifacts that could not be written
func (r Result) FailedCount() int {
	return len(r.Artifacts) - r.WrittenCount()
}

// LogValue renders the result as a structured log group
func (r Result) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("use_case", string(r.UseCase)),
		slog.Int("written", r.WrittenCount()),
		slog.Int("failed", r.FailedCount()),
	}
	if r.Err != nil {
		attrs = append(attrs, slog.String("error", r.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

func (r *Result) addArtifact(name, path string, err error) {
	r.Artifacts = append(r.Artifacts, Artifact{Name: name, Path: path, Err: err})
}

func failed(useCase UseCase, err error) Result {
	return Result{UseCase: useCase, Err: err}
}
