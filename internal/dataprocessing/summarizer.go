package dataprocessing

import (
	"fmt"
	"log/slog"
)

// StatisticsReport is the fixed-shape summary of a single numeric series.
type StatisticsReport struct {
	MaxValue    Value
	MaxLabel    Value
	MinValue    Value
	MinLabel    Value
	AverageRate float64
	Count       int
}

// Summarizer turns observation records into a StatisticsReport.
type Summarizer struct {
	logger     *slog.Logger
	valueField string
	labelField string
	subject    string
}

// SummarizerConfig holds configuration options for the Summarizer.
type SummarizerConfig struct {
	ValueField string // numeric field to rank by
	LabelField string // field reported next to each extreme, e.g. a date
	Subject    string // noun used in the report lines
}

// NewSummarizer creates a summarizer, filling in defaults for empty options.
func NewSummarizer(logger *slog.Logger, config SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.ValueField == "" {
		config.ValueField = "value"
	}
	if config.LabelField == "" {
		config.LabelField = "date"
	}
	if config.Subject == "" {
		config.Subject = "Population"
	}
	return &Summarizer{
		logger:     logger,
		valueField: config.ValueField,
		labelField: config.LabelField,
		subject:    config.Subject,
	}
}

// Summarize scans the records and builds the report.
func (s *Summarizer) Summarize(records []Record) (StatisticsReport, error) {
	ext, err := Scan(records, s.valueField, s.labelField)
	if err != nil {
		return StatisticsReport{}, err
	}

	report := StatisticsReport{
		MaxValue:    ext.MaxValue(),
		MaxLabel:    ext.MaxLabel(),
		MinValue:    ext.MinValue(),
		MinLabel:    ext.MinLabel(),
		AverageRate: ext.Rate,
		Count:       ext.Count,
	}

	s.logger.Debug("Series summarized",
		slog.Int("records", len(records)),
		slog.Int("qualifying", ext.Count),
		slog.String("max", report.MaxValue.String()),
		slog.String("min", report.MinValue.String()))

	return report, nil
}

// Lines renders the report as the three lines of the text artifact.
func (s *Summarizer) Lines(r StatisticsReport) []string {
	return []string{
		fmt.Sprintf("Maximum %s: %s in %s", s.subject, r.MaxValue, r.MaxLabel),
		fmt.Sprintf("Minimum %s: %s in %s", s.subject, r.MinValue, r.MinLabel),
		fmt.Sprintf("Average Rate of Change: %.2f per year", r.AverageRate),
	}
}
