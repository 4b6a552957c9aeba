// Package exporter writes the artifacts produced by the use cases.
//
// This package contains three writers, all resolving relative file names
// inside the processed directory and reporting failures as STORAGE errors:
//
// CSVWriter: Core CSV writing functionality with support for headers, streaming,
// and an optional UTF-8 BOM for Excel compatibility.
//
// ExcelWriter: Writes a single-sheet workbook through excelize's stream
// writer. Used for the cleaned census spreadsheet.
//
// TextWriter: Writes line-oriented plain text reports such as the
// statistics summary.
//
// Example usage:
//
//	csvWriter := exporter.NewCSVWriter(paths, logger)
//	path, err := csvWriter.WriteSimpleCSV("Penguin_Population_Change.csv", headers, records)
//
//	sw, err := csvWriter.CreateStreamWriter("word_frequencies.csv", []string{"Word", "Frequency"})
//	for _, wc := range ranked {
//		sw.WriteRecord([]string{wc.Word, strconv.Itoa(wc.Count)})
//	}
//	err = sw.Close()
package exporter
