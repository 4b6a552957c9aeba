package dataprocessing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dataproc/internal/errors"
)

func TestParseCSV(t *testing.T) {
	content := "\xEF\xBB\xBFCountry Name,Country Code,Year,Value\n" +
		"United States,USA,2010,309327143\n" +
		"United States,USA,2011,311583481\n" +
		",,,\n" +
		"Aruba,ABW,2010,\n"

	tbl, err := ParseCSV(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, []string{"Country Name", "Country Code", "Year", "Value"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, String("United States"), tbl.Rows[0]["Country Name"])
	assert.Equal(t, Int(2011), tbl.Rows[1]["Year"])
	assert.Equal(t, Int(309327143), tbl.Rows[0]["Value"])
	assert.True(t, tbl.Rows[2]["Value"].IsNull())
}

func TestParseCSV_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "ragged rows", content: "a,b\n1,2,3\n"},
		{name: "bad quote", content: "a,b\n\"1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Equal(t, errors.ErrTypeMalformedInput, errors.TypeOf(err))
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "global_population.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeNotFound, errors.TypeOf(err))
}

func TestParseObservations(t *testing.T) {
	doc := `[
		{"page": 1, "pages": 1, "per_page": 5000, "total": 4},
		[
			{"country": {"id": "US", "value": "United States"}, "date": "2023", "value": 334914895},
			{"date": "2022", "value": 333271411.5},
			{"date": "2021", "value": null},
			{"date": "2020"}
		]
	]`

	obs, err := ParseObservations(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, obs, 4)

	assert.Equal(t, Int(334914895), obs[0]["value"])
	assert.Equal(t, String("2023"), obs[0]["date"])
	assert.Equal(t, String(`{"id":"US","value":"United States"}`), obs[0]["country"])
	assert.Equal(t, Float(333271411.5), obs[1]["value"])
	assert.True(t, obs[2]["value"].IsNull())
	_, has := obs[3]["value"]
	assert.False(t, has)
}

func TestParseObservations_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "{oops"},
		{name: "object instead of array", doc: `{"value": 1}`},
		{name: "metadata only", doc: `[{"message": "Invalid value"}]`},
		{name: "observations not an array", doc: `[{}, {"value": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObservations(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Equal(t, errors.ErrTypeMalformedInput, errors.TypeOf(err))
		})
	}
}

func TestLoadObservations_MissingFile(t *testing.T) {
	_, err := LoadObservations(filepath.Join(t.TempDir(), "USA_Population.json"))
	assert.Equal(t, errors.ErrTypeNotFound, errors.TypeOf(err))
}

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "census.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{" year ", "Adelie", "Gentoo"},
		{"2010-11", 100, 20.5},
		{2014, 150, nil},
	})

	tbl, err := LoadExcel(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{" year ", "Adelie", "Gentoo"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, String("2010-11"), tbl.Rows[0][" year "])
	assert.Equal(t, Int(100), tbl.Rows[0]["Adelie"])
	assert.Equal(t, Float(20.5), tbl.Rows[0]["Gentoo"])
	assert.Equal(t, Int(2014), tbl.Rows[1][" year "])
	assert.True(t, tbl.Rows[1]["Gentoo"].IsNull())
}

func TestLoadExcel_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadExcel(filepath.Join(dir, "missing.xlsx"), "")
	assert.Equal(t, errors.ErrTypeNotFound, errors.TypeOf(err))

	garbage := filepath.Join(dir, "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a workbook"), 0644))
	_, err = LoadExcel(garbage, "")
	assert.Equal(t, errors.ErrTypeMalformedInput, errors.TypeOf(err))

	good := filepath.Join(dir, "good.xlsx")
	writeWorkbook(t, good, [][]interface{}{{"YEAR"}, {2010}})
	_, err = LoadExcel(good, "NoSuchSheet")
	assert.Equal(t, errors.ErrTypeMalformedInput, errors.TypeOf(err))
}

func TestCleanYearColumn(t *testing.T) {
	tbl := NewTable("YEAR", "ADELIE")
	tbl.Append(Record{"YEAR": String("2010-11"), "ADELIE": Int(1)})
	tbl.Append(Record{"YEAR": Int(2014), "ADELIE": Int(2)})
	tbl.Append(Record{"YEAR": Float(2015), "ADELIE": Int(3)})
	tbl.Append(Record{"YEAR": String("unknown"), "ADELIE": Int(4)})
	tbl.Append(Record{"YEAR": Int(40179), "ADELIE": Int(5)}) // 2010-01-01 as an Excel serial
	tbl.Append(Record{"YEAR": Null(), "ADELIE": Int(6)})

	out, err := CleanYearColumn(tbl, "YEAR")
	require.NoError(t, err)

	assert.Equal(t, []Value{Int(2010), Int(2014), Int(2015), Null(), Int(2010), Null()}, out.Column("YEAR"))
	assert.Equal(t, String("2010-11"), tbl.Rows[0]["YEAR"], "input must not be modified")
}

func TestCleanYearColumn_MissingColumn(t *testing.T) {
	_, err := CleanYearColumn(NewTable("DATE"), "YEAR")
	assert.Equal(t, errors.ErrTypeMalformedInput, errors.TypeOf(err))
}

func TestNormalizeColumns(t *testing.T) {
	tbl := NewTable(" year ", "Adelie")
	tbl.Append(Record{" year ": Int(2010), "Adelie": Int(1)})

	out := NormalizeColumns(tbl, UpperTrim)

	assert.Equal(t, []string{"YEAR", "ADELIE"}, out.Columns)
	assert.Equal(t, Record{"YEAR": Int(2010), "ADELIE": Int(1)}, out.Rows[0])
}
