package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataproc/internal/config"
)

func TestLogCapture_KeepsWithAttrs(t *testing.T) {
	logger, logs := NewTestLogger(t)

	logger.With("component", "census_service").Warn("Filtering census years", slog.Int("start_year", 2010))
	logger.Info("plain")

	require.Len(t, logs.Records(), 2)
	rec, ok := logs.Find("Filtering")
	require.True(t, ok)
	assert.Equal(t, "census_service", rec.Attrs["component"])
	assert.Equal(t, int64(2010), rec.Attrs["start_year"])
	assert.Len(t, logs.RecordsAt(slog.LevelInfo), 1)

	AssertLogContains(t, logs, slog.LevelWarn, "census years")
}

func TestLogCapture_NoErrors(t *testing.T) {
	logger, logs := NewTestLogger(nil)
	logger.Debug("quiet")
	AssertNoErrors(t, logs)
}

func TestWriteInputs(t *testing.T) {
	paths := NewPaths(t)
	WriteInputs(t, paths)

	for _, name := range []string{
		config.DefaultPopulationFile,
		config.DefaultCensusFile,
		config.DefaultStatisticsFile,
		config.DefaultTextFile,
	} {
		info, err := os.Stat(paths.GetInputPath(name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size())
	}
	assert.NoDirExists(t, paths.ProcessedDir)
}
