package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/grading"
)

func course(code string, units int, score float64, level, semester string) Course {
	return Course{Code: code, Title: code, Units: units, Score: score, Level: level, Semester: semester}
}

func TestSummarize_FoldsTermsChronologically(t *testing.T) {
	all := []Course{
		course("C 102", 3, 60, "100L", "2nd"),
		course("A 101", 3, 70, "100L", "1st"),
		course("B 101", 2, 45, "100L", "1st"),
	}
	p := Profile{Level: "100L", Semester: "2nd"}

	sum := Summarize(grading.NewEngine(grading.Classifier{}), p, all)

	require.Len(t, sum.History, 2)
	assert.Equal(t, "100L-1st", sum.History[0].Term.Label())
	assert.InDelta(t, 3.8, sum.History[0].GPA, 1e-9)
	assert.InDelta(t, 3.8, sum.History[0].CGPA, 1e-9)
	assert.InDelta(t, 4.0, sum.History[1].GPA, 1e-9)
	assert.InDelta(t, 3.875, sum.History[1].CGPA, 1e-9)

	assert.InDelta(t, 4.0, sum.Current.GPA, 1e-9)
	assert.Equal(t, 5, sum.Current.PriorUnits)
	assert.InDelta(t, 3.875, sum.CGPA, 1e-9)
	assert.Equal(t, 3.88, sum.DisplayCGPA())
	assert.Equal(t, 8, sum.TotalUnits)
	assert.Equal(t, 3, sum.Courses)
	assert.Equal(t, 0, sum.Carryovers)
	assert.Equal(t, grading.SecondClassUpper, sum.Class)
}

func TestSummarize_CurrentTermWithoutCourses(t *testing.T) {
	all := []Course{
		course("A 101", 3, 70, "100L", "1st"),
		course("B 101", 2, 45, "100L", "1st"),
		course("D 201", 4, 20, "200L", "1st"),
	}
	p := Profile{Level: "100L", Semester: "2nd"}

	sum := Summarize(grading.NewEngine(grading.Classifier{}), p, all)

	assert.Empty(t, sum.Current.Courses)
	assert.Equal(t, 0.0, sum.Current.GPA)
	assert.InDelta(t, 3.8, sum.Current.CGPA, 1e-9)

	// Overall CGPA still counts the later term: 19 / 9.
	assert.InDelta(t, 2.111111, sum.CGPA, 1e-6)
	assert.Equal(t, 1, sum.Carryovers)
	assert.Equal(t, 1, sum.History[1].Carryovers)
}

func TestSummarize_SeedsFromProfileHistory(t *testing.T) {
	all := []Course{course("A 301", 3, 90, "300L", "1st")}
	p := Profile{Level: "300L", Semester: "1st", PriorCGPA: 4.0, PriorUnits: 10}

	sum := Summarize(grading.NewEngine(grading.Classifier{}), p, all)

	assert.InDelta(t, 5.0, sum.Current.GPA, 1e-9)
	assert.InDelta(t, 4.230769, sum.CGPA, 1e-6)
	assert.Equal(t, 13, sum.TotalUnits)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(grading.NewEngine(grading.Classifier{}), Profile{Level: "100L", Semester: "1st"}, nil)
	assert.Empty(t, sum.History)
	assert.Equal(t, 0.0, sum.CGPA)
	assert.Equal(t, 0, sum.TotalUnits)
	assert.NotEmpty(t, sum.Current.Steps)
}

func TestSummarize_CurrentTermAfterAllHistory(t *testing.T) {
	all := []Course{course("A 101", 3, 70, "100L", "1st")}
	p := Profile{Level: "400L", Semester: "2nd"}

	sum := Summarize(grading.NewEngine(grading.Classifier{}), p, all)
	assert.Equal(t, 3, sum.Current.PriorUnits)
	assert.InDelta(t, 5.0, sum.Current.CGPA, 1e-9)
}
