package dataprocessing

import (
	"fmt"

	"dataproc/internal/errors"
)

// FilterByKey returns the rows whose keyColumn equals keyValue, in their
// original order. No match yields an empty table rather than an error; the
// caller decides whether that means "not found".
func FilterByKey(t *Table, keyColumn string, keyValue Value) (*Table, error) {
	if !t.HasColumn(keyColumn) {
		return nil, errors.NewMalformedInputError(
			fmt.Sprintf("key column %q not present", keyColumn), nil).
			WithContext("columns", t.Columns)
	}

	out := NewTable(t.Columns...)
	for _, r := range t.Rows {
		if r[keyColumn].Equal(keyValue) {
			out.Append(r)
		}
	}
	return out, nil
}

// FilterTimeIn returns the rows whose timeColumn holds an integer in allowed.
// Rows with a null or non-integral time value are dropped.
func FilterTimeIn(t *Table, timeColumn string, allowed []int) (*Table, error) {
	if !t.HasColumn(timeColumn) {
		return nil, errors.NewMalformedInputError(
			fmt.Sprintf("time column %q not present", timeColumn), nil).
			WithContext("columns", t.Columns)
	}

	set := make(map[int64]struct{}, len(allowed))
	for _, y := range allowed {
		set[int64(y)] = struct{}{}
	}

	out := NewTable(t.Columns...)
	for _, r := range t.Rows {
		year, ok := r[timeColumn].Int64()
		if !ok {
			continue
		}
		if _, keep := set[year]; keep {
			out.Append(r)
		}
	}
	return out, nil
}

// MaxOf returns the largest numeric value in column. ok is false when the
// column holds no numbers.
func MaxOf(t *Table, column string) (max float64, ok bool) {
	for _, v := range t.Column(column) {
		f, isNum := v.Float64()
		if !isNum {
			continue
		}
		if !ok || f > max {
			max, ok = f, true
		}
	}
	return max, ok
}
