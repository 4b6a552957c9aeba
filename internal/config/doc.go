// Package config provides centralized configuration management for the
// data processing tools. It loads configuration from multiple sources,
// validates it and resolves the directories every use case works in.
//
// # Configuration Sources
//
// Configuration is layered in the following order, later sources winning:
//
//  1. Default values (Default)
//  2. A YAML file (explicit path, $DATAPROC_CONFIG, dataproc.yaml or configs/dataproc.yaml)
//  3. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern DATAPROC_<SECTION>_<FIELD>:
//
//	DATAPROC_PATHS_FETCHED_DIR=/data/in
//	DATAPROC_LOGGING_LEVEL=debug
//	DATAPROC_POPULATION_COUNTRY=Canada
//	DATAPROC_CENSUS_START_YEAR=2011
//	DATAPROC_RUN_PARALLELISM=2
//
// Only variables that are set override earlier layers.
//
// # Validation
//
// Struct tags are checked with go-playground/validator. The census start
// year must be strictly less than the end year and the run parallelism must
// be positive. Failures are reported as CONFIG errors.
//
// # Path Management
//
// Paths resolves the fetched, processed and logs directories relative to
// the configured base directory (the working directory by default):
//
//	cfg, err := config.Load("")
//	paths, err := cfg.ResolvePaths()
//	in := paths.GetInputPath(cfg.Census.InputFile)
//	out := paths.GetOutputPath(cfg.Census.OutputFile)
package config
