package dataprocessing

import (
	"fmt"
	"strconv"

	"dataproc/internal/errors"
)

// PivotOptions controls PivotByTime.
type PivotOptions struct {
	// TimeColumn holds the integer time index of each row.
	TimeColumn string
	// Allowed lists the time indices that take part in the pivot.
	Allowed []int
	// EntityColumns are the columns turned into rows. Empty means every
	// column other than TimeColumn.
	EntityColumns []string
	// EntityLabel names the output column holding the entity key.
	EntityLabel string
}

// TimeColumnName is the column header PivotByTime gives to a time index.
func TimeColumnName(year int) string {
	return strconv.Itoa(year)
}

// PivotByTime transposes a long table: every entity column becomes one row
// keyed by its column name, and every distinct allowed time value becomes a
// column holding that entity's value at that time. Time columns appear in
// the order they are first seen. If a time value repeats, the later row wins.
func PivotByTime(t *Table, opts PivotOptions) (*Table, error) {
	if opts.EntityLabel == "" {
		opts.EntityLabel = "Entity"
	}

	filtered, err := FilterTimeIn(t, opts.TimeColumn, opts.Allowed)
	if err != nil {
		return nil, err
	}
	if filtered.Empty() {
		return nil, errors.NewEmptyResultError(
			fmt.Sprintf("no rows for %s in %v", opts.TimeColumn, opts.Allowed)).
			WithContext("allowed", opts.Allowed)
	}

	entities := opts.EntityColumns
	if len(entities) == 0 {
		for _, c := range t.Columns {
			if c != opts.TimeColumn {
				entities = append(entities, c)
			}
		}
	}
	for _, e := range entities {
		if !t.HasColumn(e) {
			return nil, errors.NewMalformedInputError(
				fmt.Sprintf("entity column %q not present", e), nil)
		}
	}

	wide := NewTable(opts.EntityLabel)
	rows := make([]Record, len(entities))
	for i, e := range entities {
		rows[i] = Record{opts.EntityLabel: String(e)}
	}

	seen := make(map[string]bool)
	for _, r := range filtered.Rows {
		year, _ := r[opts.TimeColumn].Int64()
		col := TimeColumnName(int(year))
		if !seen[col] {
			seen[col] = true
			wide.Columns = append(wide.Columns, col)
		}
		for i, e := range entities {
			rows[i][col] = r[e]
		}
	}

	wide.Rows = rows
	return wide, nil
}
