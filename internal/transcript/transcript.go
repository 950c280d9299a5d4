// Package transcript reads and writes course records as xlsx workbooks.
package transcript

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
)

// Sheet names in exported workbooks.
const (
	CoursesSheet = "Courses"
	SummarySheet = "Summary"
)

// Columns is the header an imported sheet must carry, in any order and case.
var Columns = []string{"code", "title", "units", "score", "level", "semester"}

// ErrNoSheet is returned for a workbook without sheets.
var ErrNoSheet = errors.New("workbook has no sheets")

var courseHeader = []any{"Code", "Title", "Level", "Semester", "Units", "Score", "Grade", "Points", "Weighted", "Carryover"}

// Export writes the courses and the summary as a workbook to w. Courses are
// graded with cl.
func Export(w io.Writer, cl grading.Classifier, list []courses.Course, sum *courses.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), CoursesSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	sw := sheetWriter{f: f, sheet: CoursesSheet, bold: bold}
	sw.header(courseHeader...)
	for _, c := range list {
		g := c.Grade(cl)
		carry := "no"
		if cl.IsCarryover(c.Score) {
			carry = "yes"
		}
		sw.row(c.Code, c.Title, c.Level, c.Semester, c.Units, c.Score,
			g.Letter, g.Points, grading.Round(float64(c.Units)*g.Points, grading.DisplayPrecision), carry)
	}
	_ = f.SetColWidth(CoursesSheet, "A", "A", 12)
	_ = f.SetColWidth(CoursesSheet, "B", "B", 36)

	if err := sw.err; err != nil {
		return err
	}

	if sum != nil {
		ss := sheetWriter{f: f, sheet: SummarySheet, bold: bold}
		writeSummary(&ss, sum)
		if ss.err != nil {
			return ss.err
		}
		_ = f.SetColWidth(SummarySheet, "A", "A", 20)
		_ = f.SetColWidth(SummarySheet, "B", "B", 90)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSummary(sw *sheetWriter, sum *courses.Summary) {
	p := sum.Profile
	sw.header("Field", "Value")
	sw.row("Name", p.Name)
	sw.row("Level", p.Level)
	sw.row("Semester", p.Semester)
	sw.row("Semester GPA", sum.DisplayGPA())
	sw.row("CGPA", sum.DisplayCGPA())
	sw.row("Total units", sum.TotalUnits)
	sw.row("Class of degree", sum.Class.DisplayName())
	sw.row("Carryovers", sum.Carryovers)

	sw.skip()
	sw.header("Term", "Courses", "Units", "GPA", "CGPA", "Carryovers")
	for _, t := range sum.History {
		sw.row(t.Term.String(), t.Courses, t.Units,
			grading.Round(t.GPA, grading.DisplayPrecision),
			grading.Round(t.CGPA, grading.DisplayPrecision), t.Carryovers)
	}

	sw.skip()
	sw.header("Step", "Calculation")
	for i, s := range sum.Current.Steps {
		sw.row(i+1, s)
	}
}

// sheetWriter appends rows to a sheet and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	bold  int
	next  int
	err   error
}

func (w *sheetWriter) row(values ...any) {
	w.next++
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("writing %s row %d: %w", w.sheet, w.next, err)
	}
}

func (w *sheetWriter) header(values ...any) {
	w.row(values...)
	if w.err != nil {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, w.next)
	last, _ := excelize.CoordinatesToCellName(len(values), w.next)
	if err := w.f.SetCellStyle(w.sheet, first, last, w.bold); err != nil {
		w.err = err
	}
}

func (w *sheetWriter) skip() {
	w.next++
}

// Import reads course inputs from the first sheet of an xlsx workbook. The
// first row is the header; blank rows are skipped. Row numbers in errors
// count courses below the header, matching courses.Service.Import.
func Import(r io.Reader) ([]courses.CourseInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty: header row required (%s)", sheet, strings.Join(Columns, ","))
	}

	idx, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var ins []courses.CourseInput
	problems := &courses.ValidationError{}
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		n := len(ins) + 1
		in, fields := parseRow(row, idx, n)
		problems.Fields = append(problems.Fields, fields...)
		ins = append(ins, in)
	}
	if len(problems.Fields) > 0 {
		return nil, problems
	}
	return ins, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(Columns))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header row missing column(s): %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(row []string, idx map[string]int, n int) (courses.CourseInput, []courses.FieldError) {
	cell := func(col string) string {
		i := idx[col]
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	prefix := fmt.Sprintf("row %d: ", n)
	var errs []courses.FieldError
	in := courses.CourseInput{
		Code:     cell("code"),
		Title:    cell("title"),
		Level:    cell("level"),
		Semester: cell("semester"),
	}

	if s := cell("units"); s != "" {
		u, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, courses.FieldError{Field: prefix + "units", Message: fmt.Sprintf("%sunits %q is not a whole number", prefix, s)})
		}
		in.Units = u
	}

	s := cell("score")
	if s == "" {
		errs = append(errs, courses.FieldError{Field: prefix + "score", Message: prefix + "score is required"})
	} else if v, err := strconv.ParseFloat(s, 64); err != nil {
		errs = append(errs, courses.FieldError{Field: prefix + "score", Message: fmt.Sprintf("%sscore %q is not a number", prefix, s)})
	} else {
		in.Score = v
	}
	return in, errs
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
