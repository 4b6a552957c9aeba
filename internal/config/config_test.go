package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataproc/internal/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataproc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "fetched_data", cfg.Paths.FetchedDir)
	assert.Equal(t, "processed_data", cfg.Paths.ProcessedDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "United States", cfg.Population.Country)
	assert.Equal(t, "United States_population_trend.png", cfg.Population.ChartFile())
	assert.Equal(t, []int{2010, 2014}, cfg.Census.Allowed())
	assert.Equal(t, "Population_Change", cfg.Census.ChangeColumn)
	assert.Equal(t, "us_population_stats.txt", cfg.Statistics.OutputFile)
	assert.Equal(t, 200, cfg.WordCloud.MaxWords)
	assert.Equal(t, 4, cfg.Run.Parallelism)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no file or env",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "file overrides defaults",
			file: `
population:
  country: Canada
census:
  start_year: 2011
  end_year: 2013
logging:
  level: debug
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Canada", cfg.Population.Country)
				assert.Equal(t, 2011, cfg.Census.StartYear)
				assert.Equal(t, 2013, cfg.Census.EndYear)
				assert.Equal(t, "debug", cfg.Logging.Level)
				// untouched sections keep their defaults
				assert.Equal(t, "Value", cfg.Population.ValueColumn)
				assert.Equal(t, "great_gatsby.txt", cfg.WordCloud.InputFile)
			},
		},
		{
			name: "env overrides file",
			file: `
population:
  country: Canada
run:
  parallelism: 2
`,
			env: map[string]string{
				"DATAPROC_POPULATION_COUNTRY":   "Mexico",
				"DATAPROC_PATHS_FETCHED_DIR":    "/data/in",
				"DATAPROC_WORD_CLOUD_MAX_WORDS": "50",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Mexico", cfg.Population.Country)
				assert.Equal(t, "/data/in", cfg.Paths.FetchedDir)
				assert.Equal(t, 50, cfg.WordCloud.MaxWords)
				assert.Equal(t, 2, cfg.Run.Parallelism)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigFileEnv, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeConfigFile(t, tt.file)
			}

			cfg, err := Load(path)
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoad_ConfigFileEnv(t *testing.T) {
	path := writeConfigFile(t, "statistics:\n  subject: GDP\n")
	t.Setenv(ConfigFileEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "GDP", cfg.Statistics.Subject)
}

func TestLoadErrorCases(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		env    map[string]string
		noFile bool
	}{
		{
			name:   "missing file",
			noFile: true,
		},
		{
			name: "invalid yaml",
			file: "population: [unclosed",
		},
		{
			name: "start year equal to end year",
			file: "census:\n  start_year: 2010\n  end_year: 2010\n",
		},
		{
			name: "zero parallelism",
			file: "run:\n  parallelism: 0\n",
		},
		{
			name: "unknown log level",
			env:  map[string]string{"DATAPROC_LOGGING_LEVEL": "verbose"},
		},
		{
			name: "unparseable env value",
			env:  map[string]string{"DATAPROC_CENSUS_START_YEAR": "twenty-ten"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigFileEnv, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			switch {
			case tt.noFile:
				path = filepath.Join(t.TempDir(), "absent.yaml")
			case tt.file != "":
				path = writeConfigFile(t, tt.file)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, errors.ErrTypeConfig, errors.TypeOf(err))
		})
	}
}

func TestConfigValidationEdgeCases(t *testing.T) {
	cfg := Default()
	cfg.WordCloud.MaxFontSize = cfg.WordCloud.MinFontSize
	assert.NoError(t, cfg.Validate(), "equal font sizes are allowed")

	cfg.WordCloud.MaxFontSize = cfg.WordCloud.MinFontSize - 1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Population.Country = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Census.StartYear, cfg.Census.EndYear = 2014, 2010
	assert.NoError(t, cfg.Validate(), "a reversed year pair yields a negative change")

	cfg.Census.EndYear = cfg.Census.StartYear
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeConfig, errors.TypeOf(err))
}

func TestLoad_ExampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "dataproc.example.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "dataproc.prom", cfg.Telemetry.MetricsFile)
	assert.Equal(t, "Year", cfg.Population.TimeColumn, "keys absent from the file keep their defaults")
}
