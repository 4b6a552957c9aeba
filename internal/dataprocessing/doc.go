// Package dataprocessing provides the tabular extraction and aggregation core
// used by every use case. It decodes input files into generic tables and
// applies the transformations that produce the derived artifacts.
//
// # Architecture
//
// The package is organized into four groups:
//
// 1. Parser: decodes CSV, Excel and JSON inputs into Table and Record values
// 2. Reshape: FilterByKey, PivotByTime and ComputeDelta
// 3. Statistics: Scan and the Summarizer built on top of it
// 4. Display: UnitScale for choosing a magnitude label
//
// # Usage
//
// Population change between two years:
//
//	t, err := dataprocessing.LoadExcel("fetched_data/Annual_Penguin_Census.xlsx", "")
//	wide, err := dataprocessing.PivotByTime(t, dataprocessing.PivotOptions{
//	    TimeColumn:  "YEAR",
//	    Allowed:     []int{2010, 2014},
//	    EntityLabel: "Species",
//	})
//	change, err := dataprocessing.ComputeDelta(wide, "2010", "2014", "Population_Change")
//
// Series statistics:
//
//	obs, err := dataprocessing.LoadObservations("fetched_data/USA_Population.json")
//	report, err := dataprocessing.NewSummarizer(logger, dataprocessing.SummarizerConfig{}).Summarize(obs)
//
// # Data Flow
//
//	File → Parser → Table → Filter/Pivot → Delta → Exporter
//	File → Parser → []Record → Scan → StatisticsReport → Exporter
//
// # Error Handling
//
// Every failure is an *errors.AppError whose Type tells the caller what went
// wrong: NOT_FOUND for missing files, MALFORMED_INPUT for undecodable data or
// absent key columns, EMPTY_RESULT when a reshape leaves no rows,
// MISSING_COLUMN when a requested delta column does not exist and
// NO_QUALIFYING_DATA when a scan has nothing to rank. An empty filter result
// is not an error; callers check Table.Empty.
//
// # Testing
//
// Use table-driven tests when adding new functionality.
package dataprocessing
