package dataprocessing

import (
	"fmt"

	"dataproc/internal/errors"
)

// ComputeDelta returns a copy of wide with deltaCol set to endCol - startCol
// on every row. An existing deltaCol is overwritten in place, so running the
// computation on its own output is a no-op.
func ComputeDelta(wide *Table, startCol, endCol, deltaCol string) (*Table, error) {
	for _, c := range []string{startCol, endCol} {
		if !wide.HasColumn(c) {
			return nil, errors.NewMissingColumnError(c).
				WithContext("columns", wide.Columns)
		}
	}

	out := wide.Clone()
	if !out.HasColumn(deltaCol) {
		out.Columns = append(out.Columns, deltaCol)
	}

	for i, r := range out.Rows {
		d, err := r[endCol].Sub(r[startCol])
		if err != nil {
			return nil, errors.NewMalformedInputError(
				fmt.Sprintf("row %d: non-numeric value", i), err)
		}
		r[deltaCol] = d
	}
	return out, nil
}
