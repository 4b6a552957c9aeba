package dataprocessing

import (
	"fmt"

	"dataproc/internal/errors"
)

// Extremes is the result of Scan.
type Extremes struct {
	Max   Record
	Min   Record
	Count int
	// Rate is (max - min) / Count.
	Rate float64

	valueField string
	labelField string
}

// MaxValue returns the value field of the max record.
func (e Extremes) MaxValue() Value { return e.Max[e.valueField] }

// MinValue returns the value field of the min record.
func (e Extremes) MinValue() Value { return e.Min[e.valueField] }

// MaxLabel returns the label field of the max record.
func (e Extremes) MaxLabel() Value { return e.Max[e.labelField] }

// MinLabel returns the label field of the min record.
func (e Extremes) MinLabel() Value { return e.Min[e.labelField] }

// Scan finds the records with the greatest and least valueField and the
// average rate of change between them.
//
// Records without valueField, or with a null one, do not qualify. A present
// but non-numeric value is malformed input. Ties go to the first occurrence.
func Scan(records []Record, valueField, labelField string) (Extremes, error) {
	res := Extremes{valueField: valueField, labelField: labelField}

	var maxV, minV float64
	for i, r := range records {
		v, ok := r[valueField]
		if !ok || v.IsNull() {
			continue
		}
		f, isNum := v.Float64()
		if !isNum {
			return Extremes{}, errors.NewMalformedInputError(
				fmt.Sprintf("record %d: %s is not numeric", i, valueField), nil).
				WithContext("value", v.String())
		}
		if _, hasLabel := r[labelField]; !hasLabel {
			return Extremes{}, errors.NewMalformedInputError(
				fmt.Sprintf("record %d: %s is missing", i, labelField), nil)
		}

		if res.Count == 0 || f > maxV {
			maxV, res.Max = f, r
		}
		if res.Count == 0 || f < minV {
			minV, res.Min = f, r
		}
		res.Count++
	}

	if res.Count == 0 {
		return Extremes{}, errors.NewNoQualifyingDataError(valueField)
	}

	res.Rate = (maxV - minV) / float64(res.Count)
	return res, nil
}
