package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"dataproc/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// openInput opens an input file, mapping a missing file to a NotFound error.
func openInput(filePath string) (*os.File, error) {
	f, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, errors.NewNotFoundError("input file "+filePath).WithContext("path", filePath)
	}
	if err != nil {
		return nil, errors.NewStorageError("failed to open input file", err).WithContext("path", filePath)
	}
	return f, nil
}

// LoadCSV reads a CSV file whose first row is the header.
func LoadCSV(filePath string) (*Table, error) {
	f, err := openInput(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	slog.Debug("Loaded CSV table",
		slog.String("path", filePath),
		slog.Int("rows", t.Len()),
		slog.Any("columns", t.Columns))
	return t, nil
}

// ParseCSV decodes CSV content into a table, inferring cell types.
func ParseCSV(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewStorageError("failed to read CSV content", err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewMalformedInputError("failed to decode CSV", err)
	}
	if len(records) == 0 {
		return nil, errors.NewMalformedInputError("CSV has no header row", nil)
	}

	return tableFromRows(records[0], records[1:]), nil
}

// LoadExcel reads the named sheet of a workbook, or the first sheet when
// sheet is empty. The first row is the header. Cells are read as raw values
// so numbers keep full precision regardless of display format.
func LoadExcel(filePath, sheet string) (*Table, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, errors.NewNotFoundError("input file "+filePath).WithContext("path", filePath)
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, errors.NewMalformedInputError("failed to open workbook", err).WithContext("path", filePath)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewMalformedInputError("workbook has no sheets", nil).WithContext("path", filePath)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewMalformedInputError(fmt.Sprintf("failed to read sheet %q", sheet), err).
			WithContext("path", filePath)
	}
	if len(rows) == 0 {
		return nil, errors.NewMalformedInputError(fmt.Sprintf("sheet %q has no header row", sheet), nil).
			WithContext("path", filePath)
	}

	slog.Debug("Loaded workbook sheet",
		slog.String("path", filePath),
		slog.String("sheet_name", sheet),
		slog.Int("total_rows", len(rows)))

	return tableFromRows(rows[0], rows[1:]), nil
}

// tableFromRows builds a table from a header and string rows. Short rows are
// padded with nulls; completely blank rows are skipped.
func tableFromRows(header []string, rows [][]string) *Table {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimPrefix(h, string(utf8BOM))
	}

	t := NewTable(columns...)
	for _, row := range rows {
		rec := make(Record, len(columns))
		blank := true
		for j, c := range columns {
			v := Null()
			if j < len(row) {
				v = ParseValue(row[j])
			}
			if !v.IsNull() {
				blank = false
			}
			rec[c] = v
		}
		if blank {
			continue
		}
		t.Append(rec)
	}
	return t
}

// LoadObservations reads a JSON document shaped [metadata, [observation...]]
// and returns the observations as records.
func LoadObservations(filePath string) ([]Record, error) {
	f, err := openInput(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obs, err := ParseObservations(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return obs, nil
}

// ParseObservations decodes the observation array of a [metadata, data]
// document. Numbers keep their integer or float form; nested objects are
// kept as their JSON text.
func ParseObservations(r io.Reader) ([]Record, error) {
	var doc []json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.NewMalformedInputError("failed to decode JSON document", err)
	}
	if len(doc) < 2 {
		return nil, errors.NewMalformedInputError(
			fmt.Sprintf("expected [metadata, observations], got %d element(s)", len(doc)), nil)
	}

	dec := json.NewDecoder(bytes.NewReader(doc[1]))
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.NewMalformedInputError("failed to decode observations", err)
	}

	out := make([]Record, 0, len(raw))
	for _, obj := range raw {
		rec := make(Record, len(obj))
		for k, v := range obj {
			rec[k] = valueFromJSON(v)
		}
		out = append(out, rec)
	}
	return out, nil
}

func valueFromJSON(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return Float(f)
		}
		return String(x.String())
	case string:
		return String(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return String(fmt.Sprint(x))
		}
		return String(string(b))
	}
}
