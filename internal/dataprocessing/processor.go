package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"dataproc/internal/errors"
)

// largest value read as a literal year; bigger numbers are Excel date serials
const maxLiteralYear = 9999

// NormalizeColumns renames every column with fn, rewriting the rows to match.
func NormalizeColumns(t *Table, fn func(string) string) *Table {
	out := NewTable()
	rename := make(map[string]string, len(t.Columns))
	for _, c := range t.Columns {
		n := fn(c)
		rename[c] = n
		out.Columns = append(out.Columns, n)
	}
	for _, r := range t.Rows {
		nr := make(Record, len(r))
		for k, v := range r {
			if n, ok := rename[k]; ok {
				nr[n] = v
			} else {
				nr[k] = v
			}
		}
		out.Append(nr)
	}
	return out
}

// UpperTrim trims surrounding whitespace and upper-cases a header.
func UpperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CleanYearColumn rewrites column so it holds a four digit integer year. The
// year is taken from the first four characters of the cell text; cells that
// do not start with a number become null. Numeric cells past 9999 are read
// as Excel date serials.
func CleanYearColumn(t *Table, column string) (*Table, error) {
	if !t.HasColumn(column) {
		return nil, errors.NewMalformedInputError(
			fmt.Sprintf("%s column not found", column), nil).
			WithContext("columns", t.Columns)
	}

	out := t.Clone()
	for _, r := range out.Rows {
		r[column] = NormalizeYear(r[column])
	}
	return out, nil
}

// NormalizeYear converts a single cell to its four digit year.
func NormalizeYear(v Value) Value {
	if f, ok := v.Float64(); ok && f > maxLiteralYear {
		if tm, err := excelize.ExcelDateToTime(f, false); err == nil {
			return Int(int64(tm.Year()))
		}
	}

	text := v.String()
	if len(text) > 4 {
		text = text[:4]
	}
	year, err := strconv.Atoi(text)
	if err != nil {
		return Null()
	}
	return Int(int64(year))
}
