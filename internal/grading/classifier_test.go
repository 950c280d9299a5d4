package grading

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestClassify_DefaultBands(t *testing.T) {
	tests := []struct {
		score  float64
		letter string
		points float64
	}{
		{100, "A", 5.0},
		{70, "A", 5.0},
		{69, "B", 4.0},
		{69.9, "B", 4.0},
		{60, "B", 4.0},
		{59, "C", 3.0},
		{50, "C", 3.0},
		{49, "D", 2.0},
		{45, "D", 2.0},
		{44, "E", 1.0},
		{40, "E", 1.0},
		{39.99, "F", 0.0},
		{0, "F", 0.0},
	}

	for _, tt := range tests {
		got := ClassifyScore(tt.score)
		if got.Letter != tt.letter || got.Points != tt.points {
			t.Errorf("ClassifyScore(%v) = %s/%.1f, want %s/%.1f", tt.score, got.Letter, got.Points, tt.letter, tt.points)
		}
		if got.Clamped {
			t.Errorf("ClassifyScore(%v) unexpectedly clamped", tt.score)
		}
		if got.Table != "UNN 5.0" {
			t.Errorf("ClassifyScore(%v).Table = %q, want UNN 5.0", tt.score, got.Table)
		}
	}
}

func TestClassify_ClampsOutOfRange(t *testing.T) {
	tests := []struct {
		score  float64
		letter string
	}{
		{-1, "F"},
		{-1000, "F"},
		{100.5, "A"},
		{250, "A"},
		{math.NaN(), "F"},
		{math.Inf(1), "A"},
		{math.Inf(-1), "F"},
	}

	for _, tt := range tests {
		got := ClassifyScore(tt.score)
		if got.Letter != tt.letter {
			t.Errorf("ClassifyScore(%v).Letter = %q, want %q", tt.score, got.Letter, tt.letter)
		}
		if !got.Clamped {
			t.Errorf("ClassifyScore(%v).Clamped = false, want true", tt.score)
		}
	}
}

func TestClassify_Exhaustive(t *testing.T) {
	bands := DefaultBandTable().Bands()
	for s := MinScore; s <= MaxScore; s++ {
		matches := 0
		for _, b := range bands {
			if b.Contains(s) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("score %d matched %d bands, want exactly 1", s, matches)
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	prev := ClassifyScore(0).Points
	for s := 1; s <= 100; s++ {
		got := ClassifyScore(float64(s)).Points
		if got < prev {
			t.Fatalf("points dropped from %.1f to %.1f at score %d", prev, got, s)
		}
		prev = got
	}
}

func TestIsCarryover_MatchesFailingLetter(t *testing.T) {
	for s := -5; s <= 105; s++ {
		score := float64(s)
		want := ClassifyScore(score).Letter == "F"
		if got := IsCarryover(score); got != want {
			t.Errorf("IsCarryover(%d) = %v, want %v", s, got, want)
		}
	}
	if !IsCarryover(39) || IsCarryover(40) {
		t.Error("carryover threshold should sit between 39 and 40")
	}
}

func TestCustomTable(t *testing.T) {
	table, err := NewBandTable("pass-fail", []GradeBand{
		{Min: 0, Max: 49, Letter: "FAIL", Points: 0},
		{Min: 50, Max: 100, Letter: "PASS", Points: 1},
	})
	if err != nil {
		t.Fatalf("NewBandTable: %v", err)
	}

	c := NewClassifier(table)
	if g := c.Classify(50); g.Letter != "PASS" || g.Table != "pass-fail" {
		t.Errorf("Classify(50) = %+v", g)
	}
	if !c.IsCarryover(49) {
		t.Error("49 should be a carryover under pass-fail")
	}
	if g := ClassifyScore(80, table); g.Letter != "PASS" {
		t.Errorf("ClassifyScore with table = %q, want PASS", g.Letter)
	}
	if table.Highest().Letter != "PASS" || table.Lowest().Letter != "FAIL" {
		t.Errorf("bands not sorted high to low: %v", table.Bands())
	}
}

func TestNewBandTable_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		bands   []GradeBand
		problem string
	}{
		{"empty", nil, "no bands"},
		{"gap", []GradeBand{
			{Min: 60, Max: 100, Letter: "A", Points: 5},
			{Min: 0, Max: 49, Letter: "F", Points: 0},
		}, "50-59"},
		{"overlap", []GradeBand{
			{Min: 50, Max: 100, Letter: "A", Points: 5},
			{Min: 0, Max: 55, Letter: "F", Points: 0},
		}, "overlap"},
		{"top uncovered", []GradeBand{
			{Min: 0, Max: 90, Letter: "A", Points: 5},
		}, "91-100"},
		{"bottom uncovered", []GradeBand{
			{Min: 10, Max: 100, Letter: "A", Points: 5},
		}, "0-9"},
		{"duplicate letter", []GradeBand{
			{Min: 50, Max: 100, Letter: "A", Points: 5},
			{Min: 0, Max: 49, Letter: "a", Points: 0},
		}, "duplicate letter"},
		{"inverted", []GradeBand{
			{Min: 0, Max: 100, Letter: "A", Points: 5},
			{Min: 60, Max: 50, Letter: "B", Points: 4},
		}, "greater than max"},
		{"negative points", []GradeBand{
			{Min: 0, Max: 100, Letter: "A", Points: -1},
		}, "finite value"},
		{"non-monotonic", []GradeBand{
			{Min: 50, Max: 100, Letter: "A", Points: 1},
			{Min: 0, Max: 49, Letter: "F", Points: 2},
		}, "outranks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBandTable(tt.name, tt.bands)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var bte *BandTableError
			if !errors.As(err, &bte) {
				t.Fatalf("expected *BandTableError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.problem) {
				t.Errorf("error %q does not mention %q", err, tt.problem)
			}
		})
	}
}

func TestBandTable_BandsIsCopy(t *testing.T) {
	table := DefaultBandTable()
	bands := table.Bands()
	bands[0].Points = 99

	if table.Highest().Points != 5.0 {
		t.Fatal("mutating Bands() result leaked into the table")
	}
}

func TestZeroClassifierUsesDefault(t *testing.T) {
	var c Classifier
	if g := c.Classify(72); g.Letter != "A" {
		t.Errorf("zero Classifier graded 72 as %q, want A", g.Letter)
	}
}

func TestClassOfDegree(t *testing.T) {
	tests := []struct {
		cgpa float64
		want DegreeClass
	}{
		{5.0, FirstClass},
		{4.5, FirstClass},
		{4.496, FirstClass},
		{4.49, SecondClassUpper},
		{3.5, SecondClassUpper},
		{3.49, SecondClassLower},
		{2.5, SecondClassLower},
		{2.0, ThirdClass},
		{1.2, Pass},
		{0.5, ProbationStanding},
	}

	for _, tt := range tests {
		if got := ClassOfDegree(tt.cgpa); got != tt.want {
			t.Errorf("ClassOfDegree(%.3f) = %q, want %q", tt.cgpa, got, tt.want)
		}
	}
}
