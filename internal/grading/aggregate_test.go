package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_WeightedSemester(t *testing.T) {
	courses := []ScoredCourse{
		{Code: "GST101", Units: 3, Score: 65},
		{Code: "MTH101", Units: 2, Score: 80},
	}

	res := Aggregate(courses, PriorState{})

	assert.Equal(t, 5, res.SemesterUnits)
	assert.InDelta(t, 22.0, res.SemesterPoints, 1e-9)
	assert.InDelta(t, 4.4, res.GPA, 1e-9)
	assert.InDelta(t, 4.4, res.CGPA, 1e-9)
}

func TestAggregate_CumulativeWithPrior(t *testing.T) {
	courses := []ScoredCourse{
		{Code: "GST101", Units: 3, Score: 65},
		{Code: "MTH101", Units: 2, Score: 80},
	}

	res := Aggregate(courses, PriorState{CGPA: 3.0, Units: 10})

	assert.InDelta(t, 30.0, res.PriorPoints, 1e-9)
	assert.InDelta(t, 52.0, res.CumulativePoints, 1e-9)
	assert.Equal(t, 15, res.CumulativeUnits)
	assert.InDelta(t, 3.466667, res.CGPA, 1e-9)
	assert.Equal(t, 3.47, res.DisplayCGPA())
	assert.Equal(t, "CGPA: 52.00 / 15 = 3.47", res.Steps[len(res.Steps)-1])
}

func TestAggregate_NoCoursesKeepsPriorCGPA(t *testing.T) {
	res := Aggregate(nil, PriorState{CGPA: 3.0, Units: 10})

	assert.Equal(t, 3.0, res.CGPA)
	assert.Equal(t, 3.0, res.DisplayCGPA())
	assert.Equal(t, 0.0, res.GPA)
	assert.Equal(t, 0, res.SemesterUnits)
	assert.Equal(t, 10, res.CumulativeUnits)
	assert.Contains(t, res.Steps, "No courses this semester")
	assert.Contains(t, res.Steps, "Semester GPA: no units this semester = 0.00")
}

func TestAggregate_NothingToCompute(t *testing.T) {
	res := Aggregate([]ScoredCourse{}, PriorState{CGPA: 4.2, Units: 0})

	assert.Zero(t, res.GPA)
	assert.Zero(t, res.CGPA)
	assert.Zero(t, res.CumulativeUnits)
	assert.Zero(t, res.PriorCGPA, "CGPA must be ignored without prior units")
	require.Len(t, res.Steps, 2)
	assert.Equal(t, "No courses or prior history: nothing to compute", res.Steps[1])
}

func TestAggregate_NoPriorBootstrap(t *testing.T) {
	courses := []ScoredCourse{
		{Code: "A", Units: 4, Score: 91},
		{Code: "B", Units: 1, Score: 47},
		{Code: "C", Units: 2, Score: 12},
	}

	res := Aggregate(courses, PriorState{CGPA: 0, Units: 0})

	assert.Equal(t, res.GPA, res.CGPA)
	assert.Equal(t, res.SemesterUnits, res.CumulativeUnits)
	assert.Equal(t, res.SemesterPoints, res.CumulativePoints)
}

func TestAggregate_EndToEndScenario(t *testing.T) {
	courses := []ScoredCourse{
		{Code: "MTH101", Units: 3, Score: 65},
		{Code: "CHM101", Units: 4, Score: 72},
		{Code: "PHY101", Units: 3, Score: 58},
	}

	res := Aggregate(courses, PriorState{})

	require.Len(t, res.Courses, 3)
	letters := []string{res.Courses[0].Letter, res.Courses[1].Letter, res.Courses[2].Letter}
	assert.Equal(t, []string{"B", "A", "C"}, letters)
	assert.Equal(t, []float64{12, 20, 9}, []float64{
		res.Courses[0].WeightedPoints, res.Courses[1].WeightedPoints, res.Courses[2].WeightedPoints,
	})
	assert.Equal(t, 10, res.SemesterUnits)
	assert.Equal(t, 41.0, res.SemesterPoints)
	assert.Equal(t, 4.1, res.DisplayGPA())
	assert.Equal(t, 4.1, res.DisplayCGPA())

	want := []string{
		"Grading scale: UNN 5.0 (A 70-100 = 5.00, B 60-69 = 4.00, C 50-59 = 3.00, D 45-49 = 2.00, E 40-44 = 1.00, F 0-39 = 0.00)",
		"MTH101: score 65 -> B -> 4.00 points (3 units x 4.00 = 12.00)",
		"CHM101: score 72 -> A -> 5.00 points (4 units x 5.00 = 20.00)",
		"PHY101: score 58 -> C -> 3.00 points (3 units x 3.00 = 9.00)",
		"Semester totals: 10 units, 41.00 grade points",
		"Semester GPA: 41.00 / 10 = 4.10",
		"Prior grade points: no prior history = 0.00",
		"Cumulative totals: 0.00 + 41.00 = 41.00 grade points over 0 + 10 = 10 units",
		"CGPA: 41.00 / 10 = 4.10",
	}
	assert.Equal(t, want, res.Steps)
}

func TestAggregate_ZeroUnitCourseIsLoggedButIgnored(t *testing.T) {
	courses := []ScoredCourse{
		{Code: "SEM100", Units: 0, Score: 90},
		{Code: "MTH101", Units: 3, Score: 55},
	}

	res := Aggregate(courses, PriorState{})

	assert.Equal(t, 3, res.SemesterUnits)
	assert.Equal(t, 3.0, res.GPA)
	assert.Contains(t, res.Steps, "SEM100: score 90 -> A -> 5.00 points (0 units x 5.00 = 0.00)")
}

func TestAggregate_CarryoverAndClampNotes(t *testing.T) {
	courses := []ScoredCourse{
		{Code: "FAIL1", Units: 2, Score: 30},
		{Code: "OVER1", Units: 2, Score: 104},
	}

	res := Aggregate(courses, PriorState{})

	carry := res.Carryovers()
	require.Len(t, carry, 1)
	assert.Equal(t, "FAIL1", carry[0].Code)
	assert.Contains(t, res.Steps[2], "[score outside 0-100, graded as 70-100 band]")
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	courses := []ScoredCourse{{Code: "X", Units: -2, Score: -5}}
	snapshot := courses[0]

	_ = Aggregate(courses, PriorState{CGPA: 2, Units: 4})

	assert.Equal(t, snapshot, courses[0])
}

func TestAggregate_Deterministic(t *testing.T) {
	courses := []ScoredCourse{
		{Code: "A", Units: 3, Score: 61.5},
		{Code: "B", Units: 2, Score: 44},
		{Code: "C", Units: 1, Score: 77},
	}
	prior := PriorState{CGPA: 3.333333, Units: 36}

	first := Aggregate(courses, prior)
	for range 20 {
		again := Aggregate(courses, prior)
		require.Equal(t, first, again)
	}
}

func TestAggregate_CustomEngineNamesTable(t *testing.T) {
	table := MustBandTable("pass-fail", []GradeBand{
		{Min: 50, Max: 100, Letter: "P", Points: 1},
		{Min: 0, Max: 49, Letter: "F", Points: 0},
	})
	engine := NewEngine(NewClassifier(table))

	res := engine.Aggregate([]ScoredCourse{{Code: "X", Units: 2, Score: 50}}, PriorState{})

	assert.Equal(t, "pass-fail", res.Table)
	assert.Equal(t, "Grading scale: pass-fail (P 50-100 = 1.00, F 0-49 = 0.00)", res.Steps[0])
	assert.Equal(t, 1.0, res.GPA)
}
