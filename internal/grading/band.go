package grading

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	// MinScore and MaxScore bound the score domain every band table must cover.
	MinScore = 0
	MaxScore = 100
)

// GradeBand maps a closed score interval [Min, Max] to a letter and grade points.
type GradeBand struct {
	Min    int     `json:"min" mapstructure:"min"`
	Max    int     `json:"max" mapstructure:"max"`
	Letter string  `json:"letter" mapstructure:"letter"`
	Points float64 `json:"points" mapstructure:"points"`
}

// Contains reports whether the (integer) score falls inside the band.
func (b GradeBand) Contains(score int) bool {
	return b.Min <= score && score <= b.Max
}

func (b GradeBand) String() string {
	return fmt.Sprintf("%s %d-%d = %.2f", b.Letter, b.Min, b.Max, b.Points)
}

// BandTable is a validated, immutable grading scale. Bands are held in
// descending score order. The zero value is empty; use NewBandTable or
// DefaultBandTable.
type BandTable struct {
	name  string
	bands []GradeBand
}

// BandTableError lists every problem found while validating a band table.
type BandTableError struct {
	Name     string
	Problems []string
}

func (e *BandTableError) Error() string {
	return fmt.Sprintf("grade band table %q validation failed:\n  %s", e.Name, strings.Join(e.Problems, "\n  "))
}

// NewBandTable validates bands and returns an immutable table. The input
// order does not matter; the table sorts a private copy high to low.
func NewBandTable(name string, bands []GradeBand) (BandTable, error) {
	if name == "" {
		name = "custom"
	}
	sorted := make([]GradeBand, len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Min > sorted[j].Min })

	if problems := validateBands(sorted); len(problems) > 0 {
		return BandTable{}, &BandTableError{Name: name, Problems: problems}
	}
	return BandTable{name: name, bands: sorted}, nil
}

// MustBandTable is like NewBandTable but panics on an invalid table.
func MustBandTable(name string, bands []GradeBand) BandTable {
	t, err := NewBandTable(name, bands)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = MustBandTable("UNN 5.0", []GradeBand{
	{Min: 70, Max: 100, Letter: "A", Points: 5.0},
	{Min: 60, Max: 69, Letter: "B", Points: 4.0},
	{Min: 50, Max: 59, Letter: "C", Points: 3.0},
	{Min: 45, Max: 49, Letter: "D", Points: 2.0},
	{Min: 40, Max: 44, Letter: "E", Points: 1.0},
	{Min: 0, Max: 39, Letter: "F", Points: 0.0},
})

// DefaultBandTable returns the six-band 5.0 scale.
func DefaultBandTable() BandTable {
	return defaultTable
}

// Name identifies the table in audit trails.
func (t BandTable) Name() string {
	return t.name
}

// Bands returns a copy of the bands, highest first.
func (t BandTable) Bands() []GradeBand {
	out := make([]GradeBand, len(t.bands))
	copy(out, t.bands)
	return out
}

// IsZero reports whether t was never built by NewBandTable.
func (t BandTable) IsZero() bool {
	return len(t.bands) == 0
}

// Highest returns the band covering the top of the scale.
func (t BandTable) Highest() GradeBand {
	return t.bands[0]
}

// Lowest returns the failing band at the bottom of the scale.
func (t BandTable) Lowest() GradeBand {
	return t.bands[len(t.bands)-1]
}

// Lookup returns the band for a letter grade.
func (t BandTable) Lookup(letter string) (GradeBand, bool) {
	for _, b := range t.bands {
		if strings.EqualFold(b.Letter, letter) {
			return b, true
		}
	}
	return GradeBand{}, false
}

func (t BandTable) String() string {
	parts := make([]string, len(t.bands))
	for i, b := range t.bands {
		parts[i] = b.String()
	}
	return fmt.Sprintf("%s (%s)", t.name, strings.Join(parts, ", "))
}

// validateBands checks a descending-sorted band list.
func validateBands(bands []GradeBand) []string {
	if len(bands) == 0 {
		return []string{"table has no bands"}
	}

	var errs []string
	letters := make(map[string]bool, len(bands))
	for _, b := range bands {
		if b.Letter == "" {
			errs = append(errs, fmt.Sprintf("band %d-%d has an empty letter", b.Min, b.Max))
		}
		key := strings.ToUpper(b.Letter)
		if letters[key] {
			errs = append(errs, fmt.Sprintf("duplicate letter %q", b.Letter))
		}
		letters[key] = true

		if b.Min > b.Max {
			errs = append(errs, fmt.Sprintf("band %s: min %d is greater than max %d", b.Letter, b.Min, b.Max))
		}
		if b.Min < MinScore || b.Max > MaxScore {
			errs = append(errs, fmt.Sprintf("band %s: %d-%d is outside %d-%d", b.Letter, b.Min, b.Max, MinScore, MaxScore))
		}
		if b.Points < 0 || math.IsNaN(b.Points) || math.IsInf(b.Points, 0) {
			errs = append(errs, fmt.Sprintf("band %s: points must be a finite value >= 0, got %v", b.Letter, b.Points))
		}
	}

	if top := bands[0]; top.Max < MaxScore {
		errs = append(errs, fmt.Sprintf("scores %d-%d are not covered by any band", top.Max+1, MaxScore))
	}
	if bottom := bands[len(bands)-1]; bottom.Min > MinScore {
		errs = append(errs, fmt.Sprintf("scores %d-%d are not covered by any band", MinScore, bottom.Min-1))
	}

	for i := 1; i < len(bands); i++ {
		upper, lower := bands[i-1], bands[i]
		switch {
		case lower.Max >= upper.Min:
			errs = append(errs, fmt.Sprintf("bands %s and %s overlap at %d-%d", upper.Letter, lower.Letter, upper.Min, lower.Max))
		case lower.Max+1 < upper.Min:
			errs = append(errs, fmt.Sprintf("scores %d-%d between %s and %s are not covered", lower.Max+1, upper.Min-1, lower.Letter, upper.Letter))
		}
		if lower.Points > upper.Points {
			errs = append(errs, fmt.Sprintf("band %s (%.2f points) outranks higher band %s (%.2f points)", lower.Letter, lower.Points, upper.Letter, upper.Points))
		}
	}

	return errs
}
