package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"dataproc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Population PopulationConfig `yaml:"population" envconfig:"POPULATION"`
	Census     CensusConfig     `yaml:"census" envconfig:"CENSUS"`
	Statistics StatisticsConfig `yaml:"statistics" envconfig:"STATISTICS"`
	WordCloud  WordCloudConfig  `yaml:"word_cloud" envconfig:"WORD_CLOUD"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" envconfig:"TELEMETRY"`
	Run        RunConfig        `yaml:"run" envconfig:"RUN"`
}

// PathsConfig contains file system paths configuration. Relative
// directories are resolved against BaseDir, or the working directory when
// BaseDir is empty.
type PathsConfig struct {
	BaseDir      string `yaml:"base_dir" envconfig:"BASE_DIR"`
	FetchedDir   string `yaml:"fetched_dir" envconfig:"FETCHED_DIR" validate:"required"`
	ProcessedDir string `yaml:"processed_dir" envconfig:"PROCESSED_DIR" validate:"required"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format      string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output      string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// PopulationConfig drives the population trend chart.
type PopulationConfig struct {
	InputFile   string  `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	Country     string  `yaml:"country" envconfig:"COUNTRY" validate:"required"`
	KeyColumn   string  `yaml:"key_column" envconfig:"KEY_COLUMN" validate:"required"`
	TimeColumn  string  `yaml:"time_column" envconfig:"TIME_COLUMN" validate:"required"`
	ValueColumn string  `yaml:"value_column" envconfig:"VALUE_COLUMN" validate:"required"`
	ChartSuffix string  `yaml:"chart_suffix" envconfig:"CHART_SUFFIX" validate:"required"`
	ChartWidth  float64 `yaml:"chart_width" envconfig:"CHART_WIDTH" validate:"gt=0"`
	ChartHeight float64 `yaml:"chart_height" envconfig:"CHART_HEIGHT" validate:"gt=0"`
}

// CensusConfig drives the spreadsheet cleaning and population change report.
type CensusConfig struct {
	InputFile    string `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	Sheet        string `yaml:"sheet" envconfig:"SHEET"`
	CleanedFile  string `yaml:"cleaned_file" envconfig:"CLEANED_FILE" validate:"required"`
	OutputFile   string `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	YearColumn   string `yaml:"year_column" envconfig:"YEAR_COLUMN" validate:"required"`
	StartYear    int    `yaml:"start_year" envconfig:"START_YEAR" validate:"gt=0,nefield=EndYear"`
	EndYear      int    `yaml:"end_year" envconfig:"END_YEAR" validate:"gt=0"`
	EntityLabel  string `yaml:"entity_label" envconfig:"ENTITY_LABEL" validate:"required"`
	ChangeColumn string `yaml:"change_column" envconfig:"CHANGE_COLUMN" validate:"required"`
}

// StatisticsConfig drives the JSON series statistics report.
type StatisticsConfig struct {
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	ValueField string `yaml:"value_field" envconfig:"VALUE_FIELD" validate:"required"`
	LabelField string `yaml:"label_field" envconfig:"LABEL_FIELD" validate:"required"`
	Subject    string `yaml:"subject" envconfig:"SUBJECT" validate:"required"`
}

// WordCloudConfig drives the word frequency report and cloud image.
type WordCloudConfig struct {
	InputFile     string  `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	FrequencyFile string  `yaml:"frequency_file" envconfig:"FREQUENCY_FILE" validate:"required"`
	CloudFile     string  `yaml:"cloud_file" envconfig:"CLOUD_FILE" validate:"required"`
	MaxWords      int     `yaml:"max_words" envconfig:"MAX_WORDS" validate:"min=1"`
	Width         float64 `yaml:"width" envconfig:"WIDTH" validate:"gt=0"`
	Height        float64 `yaml:"height" envconfig:"HEIGHT" validate:"gt=0"`
	MinFontSize   float64 `yaml:"min_font_size" envconfig:"MIN_FONT_SIZE" validate:"gt=0"`
	MaxFontSize   float64 `yaml:"max_font_size" envconfig:"MAX_FONT_SIZE" validate:"gtefield=MinFontSize"`
}

// TelemetryConfig controls the metrics textfile and trace export. Empty
// paths disable the corresponding output.
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
	TraceFile   string `yaml:"trace_file" envconfig:"TRACE_FILE"`
}

// RunConfig controls how processall schedules use cases.
type RunConfig struct {
	Parallelism int `yaml:"parallelism" envconfig:"PARALLELISM" validate:"min=1"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty filePath falls
// back to $DATAPROC_CONFIG and then to the well-known locations.
func Load(filePath string) (*Config, error) {
	cfg := Default()

	if filePath == "" {
		filePath = getConfigFilePath()
	}
	if filePath != "" {
		if err := loadFromFile(filePath, cfg); err != nil {
			return nil, errors.NewConfigError("failed to load config from file", err).
				WithContext("path", filePath)
		}
	}

	// No default tags: only variables that are actually set override.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays YAML settings onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.NewConfigError("config validation failed", err)
	}
	return nil
}

// Allowed returns the census year pair in the order it is reported.
func (c CensusConfig) Allowed() []int {
	return []int{c.StartYear, c.EndYear}
}

// ChartFile returns the chart file name for the configured country.
func (c PopulationConfig) ChartFile() string {
	return fmt.Sprintf("%s%s", c.Country, c.ChartSuffix)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if p := os.Getenv(ConfigFileEnv); p != "" {
		return p
	}

	locations := []string{
		"dataproc.yaml",
		"configs/dataproc.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			FetchedDir:   DefaultFetchedDir,
			ProcessedDir: DefaultProcessedDir,
			LogsDir:      DefaultLogsDir,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "json",
			Output:      "console",
			FilePath:    "",
			Development: false,
		},
		Population: PopulationConfig{
			InputFile:   DefaultPopulationFile,
			Country:     DefaultCountry,
			KeyColumn:   "Country Name",
			TimeColumn:  "Year",
			ValueColumn: "Value",
			ChartSuffix: DefaultChartSuffix,
			ChartWidth:  10,
			ChartHeight: 6,
		},
		Census: CensusConfig{
			InputFile:    DefaultCensusFile,
			CleanedFile:  DefaultCleanedCensus,
			OutputFile:   DefaultChangeReport,
			YearColumn:   "YEAR",
			StartYear:    DefaultStartYear,
			EndYear:      DefaultEndYear,
			EntityLabel:  "Species",
			ChangeColumn: "Population_Change",
		},
		Statistics: StatisticsConfig{
			InputFile:  DefaultStatisticsFile,
			OutputFile: DefaultStatsReport,
			ValueField: "value",
			LabelField: "date",
			Subject:    "Population",
		},
		WordCloud: WordCloudConfig{
			InputFile:     DefaultTextFile,
			FrequencyFile: DefaultFrequencyReport,
			CloudFile:     DefaultWordCloud,
			MaxWords:      200,
			Width:         400,
			Height:        200,
			MinFontSize:   6,
			MaxFontSize:   48,
		},
		Telemetry: TelemetryConfig{
			ServiceName: AppName,
		},
		Run: RunConfig{
			Parallelism: 4,
		},
	}
}
