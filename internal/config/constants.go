package config

// Application constants
const (
	AppName    = "dataproc"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. DATAPROC_LOGGING_LEVEL
	EnvPrefix = "DATAPROC"
	// ConfigFileEnv points at an explicit YAML config file
	ConfigFileEnv = "DATAPROC_CONFIG"

	// Directories (relative to the base directory)
	DefaultFetchedDir   = "fetched_data"
	DefaultProcessedDir = "processed_data"
	DefaultLogsDir      = "logs"

	// Input files
	DefaultPopulationFile = "global_population.csv"
	DefaultCensusFile     = "Annual_Penguin_Census.xlsx"
	DefaultStatisticsFile = "USA_Population.json"
	DefaultTextFile       = "great_gatsby.txt"

	// Output files
	DefaultChartSuffix     = "_population_trend.png"
	DefaultCleanedCensus   = "cleaned_Annual_Penguin_Census.xlsx"
	DefaultChangeReport    = "Penguin_Population_Change.csv"
	DefaultStatsReport     = "us_population_stats.txt"
	DefaultFrequencyReport = "word_frequencies.csv"
	DefaultWordCloud       = "word_cloud.png"

	// Use case parameters
	DefaultCountry   = "United States"
	DefaultStartYear = 2010
	DefaultEndYear   = 2014
)
