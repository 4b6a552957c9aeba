package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
)

// Value is a single table cell: null, integer, float or string.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// ParseValue infers a Value from cell text. Blank text is null, integer and
// float literals become numbers and anything else stays a string.
func ParseValue(text string) Value {
	text = strings.TrimSpace(text)
	if text == "" {
		return Null()
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(f) {
		return Float(f)
	}
	return String(text)
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNumeric reports whether v holds an int or a float.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Float64 returns the numeric value as float64. ok is false for null and
// string values.
func (v Value) Float64() (f float64, ok bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Int64 returns the value as an integer when it is an int or an integral float.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return int64(v.f), true
		}
	}
	return 0, false
}

// Text returns the string payload of a string value.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindString
}

// String formats the value for CSV and report output. Null renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	}
	return ""
}

// Any returns the payload as a plain Go value for spreadsheet cells: nil,
// int64, float64 or string.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	}
	return nil
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	return v == o
}

// Sub returns v - o. Two ints subtract as ints, a float operand promotes the
// result to float and a null operand yields null.
func (v Value) Sub(o Value) (Value, error) {
	if v.IsNull() || o.IsNull() {
		return Null(), nil
	}
	if !v.IsNumeric() || !o.IsNumeric() {
		return Null(), fmt.Errorf("cannot subtract %q from %q", o.String(), v.String())
	}
	if v.kind == KindInt && o.kind == KindInt {
		return Int(v.i - o.i), nil
	}
	a, _ := v.Float64()
	b, _ := o.Float64()
	return Float(a - b), nil
}

// Record maps column names to cell values.
type Record map[string]Value

// Get returns the value stored under column and whether the column is present.
func (r Record) Get(column string) (Value, bool) {
	v, ok := r[column]
	return v, ok
}

// Table is an ordered sequence of records sharing a column set. Columns holds
// the output order; lookups go through the record maps.
type Table struct {
	Columns []string
	Rows    []Record
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool { return len(t.Rows) == 0 }

// HasColumn reports whether column is part of the table's column set.
func (t *Table) HasColumn(column string) bool {
	return t.columnIndex(column) >= 0
}

// Append adds a row to the table.
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// Column returns every row's value for column, in row order.
func (t *Table) Column(column string) []Value {
	out := make([]Value, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[column]
	}
	return out
}

// Select returns the rows projected onto columns as strings, ready for a
// CSV writer. Absent cells render empty.
func (t *Table) Select(columns ...string) [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = r[c].String()
		}
		out = append(out, row)
	}
	return out
}

// Cells is Select for typed sinks such as spreadsheets.
func (t *Table) Cells(columns ...string) [][]any {
	out := make([][]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make([]any, len(columns))
		for j, c := range columns {
			row[j] = r[c].Any()
		}
		out = append(out, row)
	}
	return out
}

// Clone returns a copy of the table whose rows can be modified independently.
func (t *Table) Clone() *Table {
	c := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Record, len(t.Rows)),
	}
	for i, r := range t.Rows {
		nr := make(Record, len(r))
		for k, v := range r {
			nr[k] = v
		}
		c.Rows[i] = nr
	}
	return c
}

func (t *Table) columnIndex(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}
