package transcript

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
)

func sampleCourses() []courses.Course {
	return []courses.Course{
		{Code: "MTH 101", Title: "Elementary Mathematics", Units: 3, Score: 72, Level: "100L", Semester: "1st"},
		{Code: "PHY 101", Title: "General Physics", Units: 2, Score: 38.5, Level: "100L", Semester: "1st"},
	}
}

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

func TestExport_RoundTrip(t *testing.T) {
	list := sampleCourses()
	cl := grading.NewClassifier(grading.BandTable{})
	sum := courses.Summarize(grading.NewEngine(cl), courses.Profile{Name: "Ada", Level: "100L", Semester: "1st"}, list)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, cl, list, sum))

	ins, err := Import(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, ins, 2)
	assert.Equal(t, courses.CourseInput{
		Code: "MTH 101", Title: "Elementary Mathematics", Units: 3, Score: 72, Level: "100L", Semester: "1st",
	}, ins[0])
	assert.Equal(t, 38.5, ins[1].Score)
}

func TestExport_Sheets(t *testing.T) {
	list := sampleCourses()
	cl := grading.NewClassifier(grading.BandTable{})
	sum := courses.Summarize(grading.NewEngine(cl), courses.Profile{Name: "Ada", Level: "100L", Semester: "1st"}, list)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, cl, list, sum))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{CoursesSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(CoursesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Grade", rows[0][6])
	assert.Equal(t, []string{"MTH 101", "Elementary Mathematics", "100L", "1st", "3", "72", "A", "5", "15", "no"}, rows[1])
	assert.Equal(t, "F", rows[2][6])
	assert.Equal(t, "yes", rows[2][9])

	rows, err = f.GetRows(SummarySheet)
	require.NoError(t, err)
	var cgpa string
	var steps []string
	inSteps := false
	for _, r := range rows {
		if len(r) < 2 {
			continue
		}
		if r[0] == "CGPA" {
			cgpa = r[1]
		}
		if inSteps {
			steps = append(steps, r[1])
		}
		if r[0] == "Step" {
			inSteps = true
		}
	}
	// (15 + 0) / 5 = 3
	assert.Equal(t, "3", cgpa)
	assert.Equal(t, sum.Current.Steps, steps)
}

func TestImport_HeaderAnyOrderAndCase(t *testing.T) {
	buf := workbook(t,
		[]any{"Semester", "LEVEL", "Score", "Units", "Title", "Code", "Notes"},
		[]any{"2nd", "200L", 55, "", "Data Structures", "csc 201", "ignored"},
		[]any{},
		[]any{"1st", "200L", "64.5", 4, "Statistics", "STA 201"},
	)

	ins, err := Import(buf)
	require.NoError(t, err)
	require.Len(t, ins, 2)
	assert.Equal(t, "csc 201", ins[0].Code)
	assert.Equal(t, 0, ins[0].Units)
	assert.Equal(t, 55.0, ins[0].Score)
	assert.Equal(t, 4, ins[1].Units)
	assert.Equal(t, 64.5, ins[1].Score)
}

func TestImport_MissingColumns(t *testing.T) {
	buf := workbook(t, []any{"code", "title", "score"})

	_, err := Import(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "units, level, semester")
}

func TestImport_BadCells(t *testing.T) {
	buf := workbook(t,
		[]any{"code", "title", "units", "score", "level", "semester"},
		[]any{"MTH 101", "Maths", "three", 70, "100L", "1st"},
		[]any{"PHY 101", "Physics", 2, "", "100L", "1st"},
		[]any{"CHM 101", "Chemistry", 2, "seventy", "100L", "1st"},
	)

	_, err := Import(buf)
	var verr *courses.ValidationError
	require.ErrorAs(t, err, &verr)
	m := verr.Map()
	assert.Contains(t, m, "row 1: units")
	assert.Contains(t, m, "row 2: score")
	assert.Contains(t, m, "row 3: score")
	assert.Len(t, m, 3)
}

func TestImport_NotAWorkbook(t *testing.T) {
	_, err := Import(bytes.NewReader([]byte("code,title\n")))
	assert.Error(t, err)
}
