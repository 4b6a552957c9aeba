package dataprocessing

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unit is a display magnitude for large counts.
type Unit string

const (
	UnitBillions  Unit = "billions"
	UnitMillions  Unit = "millions"
	UnitThousands Unit = "thousands"
)

// UnitScale picks the display unit for a maximum magnitude m. Anything below
// a million, including zero and negatives, is shown in thousands.
func UnitScale(m float64) Unit {
	switch {
	case m >= 1e9:
		return UnitBillions
	case m >= 1e6:
		return UnitMillions
	default:
		return UnitThousands
	}
}

// Divisor returns the factor that converts a raw value into u.
func (u Unit) Divisor() float64 {
	switch u {
	case UnitBillions:
		return 1e9
	case UnitMillions:
		return 1e6
	default:
		return 1e3
	}
}

// Title returns the capitalised unit name, e.g. "Millions".
func (u Unit) Title() string {
	return cases.Title(language.English).String(string(u))
}
