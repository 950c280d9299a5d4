package grading

import "math"

// Grade is the outcome of classifying one score.
type Grade struct {
	Letter string
	Points float64

	// Band is the band that matched. Table names the scale it came from.
	Band  GradeBand
	Table string

	// Clamped is set when the input score lay outside 0-100 (or was NaN)
	// and was pulled to the nearest boundary band.
	Clamped bool
}

// Classifier maps scores to grades under one band table. It is an
// immutable value and safe for concurrent use.
type Classifier struct {
	table BandTable
}

// NewClassifier returns a classifier for table. A zero table selects the
// default scale.
func NewClassifier(table BandTable) Classifier {
	if table.IsZero() {
		table = DefaultBandTable()
	}
	return Classifier{table: table}
}

// Table returns the band table in use.
func (c Classifier) Table() BandTable {
	if c.table.IsZero() {
		return DefaultBandTable()
	}
	return c.table
}

// Classify returns the grade for score. It never fails: scores below 0 and
// NaN land in the lowest band, scores above 100 in the highest. Fractional
// scores are graded on their integer part, so 69.9 is still a B on the
// default scale.
func (c Classifier) Classify(score float64) Grade {
	table := c.Table()

	clamped := false
	switch {
	case math.IsNaN(score) || score < MinScore:
		score, clamped = MinScore, true
	case score > MaxScore:
		score, clamped = MaxScore, true
	}

	whole := int(math.Floor(score))
	for _, b := range table.bands {
		if b.Contains(whole) {
			return Grade{Letter: b.Letter, Points: b.Points, Band: b, Table: table.name, Clamped: clamped}
		}
	}

	// Unreachable for a validated table; keep the documented fallback.
	low := table.Lowest()
	return Grade{Letter: low.Letter, Points: low.Points, Band: low, Table: table.name, Clamped: true}
}

// IsCarryover reports whether score falls in the failing (lowest) band.
func (c Classifier) IsCarryover(score float64) bool {
	return c.Classify(score).Band == c.Table().Lowest()
}

var defaultClassifier = NewClassifier(DefaultBandTable())

// ClassifyScore classifies score under table, or under the default scale
// when no table is given.
func ClassifyScore(score float64, table ...BandTable) Grade {
	if len(table) > 0 {
		return NewClassifier(table[0]).Classify(score)
	}
	return defaultClassifier.Classify(score)
}

// IsCarryover reports whether score fails under the default scale.
func IsCarryover(score float64) bool {
	return defaultClassifier.IsCarryover(score)
}
