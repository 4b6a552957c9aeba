package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dataproc/internal/config"
)

// PopulationCSV is a small global population table. The United States rows
// include a blank value; Aruba stays below a million.
const PopulationCSV = `Country Name,Country Code,Year,Value
Aruba,ABW,2010,100341
United States,USA,2010,309327143
United States,USA,2011,311583481
United States,USA,2012,
United States,USA,2013,316059947
`

// ObservationsJSON is a two element document: paging metadata followed by
// the observations. The null value must be skipped.
const ObservationsJSON = `[
	{"page": 1, "pages": 1, "per_page": 50, "total": 4},
	[
		{"date": "2020", "value": 100},
		{"date": "2021", "value": 80},
		{"date": "2022", "value": 120},
		{"date": "2023", "value": null}
	]
]`

// NovelText yields cat=2, sat=1, ran=1 once stop words are removed
const NovelText = "The cat sat. The cat ran."

// CensusRows returns a raw census sheet with untidy headers and season
// style years.
func CensusRows() [][]any {
	return [][]any{
		{" year ", "Adelie ", "gentoo"},
		{"2009-10", 90, 10},
		{"2010-11", 100, 20},
		{2012, 120, 15},
		{2014, 150, 12.5},
	}
}

// NewPaths lays out a fresh base directory with the default sub
// directories. Only the fetched directory is created.
func NewPaths(t *testing.T) *config.Paths {
	t.Helper()
	paths := config.NewPaths(t.TempDir(), config.DefaultFetchedDir, config.DefaultProcessedDir, config.DefaultLogsDir)
	require.NoError(t, os.MkdirAll(paths.FetchedDir, 0755))
	return paths
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// WriteWorkbook saves rows into the first sheet of a new workbook
func WriteWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, f.SaveAs(path))
}

// WriteInputs writes every default input file into the fetched directory
func WriteInputs(t *testing.T, paths *config.Paths) {
	t.Helper()
	WriteFile(t, paths.GetInputPath(config.DefaultPopulationFile), PopulationCSV)
	WriteFile(t, paths.GetInputPath(config.DefaultStatisticsFile), ObservationsJSON)
	WriteFile(t, paths.GetInputPath(config.DefaultTextFile), NovelText)
	WriteWorkbook(t, paths.GetInputPath(config.DefaultCensusFile), CensusRows())
}
