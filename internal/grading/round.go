package grading

import "math"

const (
	// Precision is the number of decimal places kept on every bookkeeping
	// value so repeated aggregation of the same inputs cannot drift.
	Precision = 6

	// DisplayPrecision is the number of decimal places shown to users.
	DisplayPrecision = 2
)

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

func round6(x float64) float64 {
	return Round(x, Precision)
}
