package dataprocessing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataproc/internal/errors"
)

func observations() []Record {
	return []Record{
		{"value": Int(100), "date": String("2020")},
		{"value": Int(80), "date": String("2021")},
		{"value": Int(120), "date": String("2022")},
	}
}

func TestScan_ScenarioB(t *testing.T) {
	ext, err := Scan(observations(), "value", "date")
	require.NoError(t, err)

	assert.Equal(t, Int(120), ext.MaxValue())
	assert.Equal(t, String("2022"), ext.MaxLabel())
	assert.Equal(t, Int(80), ext.MinValue())
	assert.Equal(t, String("2021"), ext.MinLabel())
	assert.Equal(t, 3, ext.Count)
	assert.InDelta(t, 13.3333, ext.Rate, 0.001)
}

func TestScan_SkipsRecordsWithoutValue(t *testing.T) {
	records := append(observations(),
		Record{"date": String("2023")},
		Record{"value": Null(), "date": String("2024")},
	)

	ext, err := Scan(records, "value", "date")
	require.NoError(t, err)

	assert.Equal(t, 3, ext.Count)
	assert.InDelta(t, 40.0/3.0, ext.Rate, 1e-9)
}

func TestScan_TiesGoToFirstOccurrence(t *testing.T) {
	records := []Record{
		{"value": Int(5), "date": String("a")},
		{"value": Int(9), "date": String("b")},
		{"value": Int(5), "date": String("c")},
		{"value": Int(9), "date": String("d")},
	}

	ext, err := Scan(records, "value", "date")
	require.NoError(t, err)

	assert.Equal(t, String("b"), ext.MaxLabel())
	assert.Equal(t, String("a"), ext.MinLabel())
}

func TestScan_AllEqualHasZeroRate(t *testing.T) {
	records := []Record{
		{"value": Float(3.5), "date": String("x")},
		{"value": Float(3.5), "date": String("y")},
	}

	ext, err := Scan(records, "value", "date")
	require.NoError(t, err)
	assert.Equal(t, 0.0, ext.Rate)
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		wantType errors.ErrorType
	}{
		{
			name:     "no records",
			records:  nil,
			wantType: errors.ErrTypeNoQualifyingData,
		},
		{
			name:     "only nulls",
			records:  []Record{{"value": Null(), "date": String("2020")}},
			wantType: errors.ErrTypeNoQualifyingData,
		},
		{
			name:     "non-numeric value",
			records:  []Record{{"value": String("lots"), "date": String("2020")}},
			wantType: errors.ErrTypeMalformedInput,
		},
		{
			name:     "missing label",
			records:  []Record{{"value": Int(1)}},
			wantType: errors.ErrTypeMalformedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(tt.records, "value", "date")
			require.Error(t, err)
			assert.Equal(t, tt.wantType, errors.TypeOf(err))
		})
	}
}

func TestScan_MinNeverExceedsMax(t *testing.T) {
	series := [][]float64{
		{1},
		{3, 1, 2},
		{-5, -1, -10},
		{0.5, 0.25, 0.75, 0.25},
	}

	for _, values := range series {
		records := make([]Record, len(values))
		for i, v := range values {
			records[i] = Record{"value": Float(v), "date": String("d")}
		}

		ext, err := Scan(records, "value", "date")
		require.NoError(t, err)

		maxV, _ := ext.MaxValue().Float64()
		minV, _ := ext.MinValue().Float64()
		assert.LessOrEqual(t, minV, maxV)
		assert.GreaterOrEqual(t, ext.Rate, 0.0)
	}
}

func TestSummarizer_Lines(t *testing.T) {
	s := NewSummarizer(nil, SummarizerConfig{})

	report, err := s.Summarize(observations())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Maximum Population: 120 in 2022",
		"Minimum Population: 80 in 2021",
		"Average Rate of Change: 13.33 per year",
	}, s.Lines(report))
}

func TestSummarizer_CustomFields(t *testing.T) {
	s := NewSummarizer(nil, SummarizerConfig{ValueField: "gdp", LabelField: "year", Subject: "GDP"})

	report, err := s.Summarize([]Record{
		{"gdp": Float(1.5), "year": Int(1999)},
		{"gdp": Float(2.5), "year": Int(2000)},
	})
	require.NoError(t, err)

	lines := s.Lines(report)
	assert.True(t, strings.HasPrefix(lines[0], "Maximum GDP: 2.5 in 2000"))
	assert.Equal(t, "Average Rate of Change: 0.50 per year", lines[2])
}

func TestUnitScale(t *testing.T) {
	tests := []struct {
		m    float64
		want Unit
	}{
		{m: 1e9, want: UnitBillions},
		{m: 7.9e9, want: UnitBillions},
		{m: 1e6, want: UnitMillions},
		{m: 999999999, want: UnitMillions},
		{m: 999999, want: UnitThousands},
		{m: 999, want: UnitThousands},
		{m: 0, want: UnitThousands},
		{m: -5e9, want: UnitThousands},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, UnitScale(tt.m))
		})
	}
}

func TestUnit_DivisorAndTitle(t *testing.T) {
	assert.Equal(t, 1e9, UnitBillions.Divisor())
	assert.Equal(t, 1e6, UnitMillions.Divisor())
	assert.Equal(t, 1e3, UnitThousands.Divisor())
	assert.Equal(t, "Millions", UnitMillions.Title())
}
