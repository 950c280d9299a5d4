package grading

import (
	"fmt"
	"strconv"
)

// ScoredCourse is one course as seen by the engine. Title, Level and
// Semester are carried for display only.
type ScoredCourse struct {
	Code     string  `json:"code"`
	Units    int     `json:"units"`
	Score    float64 `json:"score"`
	Title    string  `json:"title,omitempty"`
	Level    string  `json:"level,omitempty"`
	Semester string  `json:"semester,omitempty"`
}

// PriorState is the cumulative record from every earlier semester.
// Units == 0 means no history and CGPA is ignored.
type PriorState struct {
	CGPA  float64 `json:"cgpa"`
	Units int     `json:"units"`
}

// CourseBreakdown is the per-course line of an aggregation.
type CourseBreakdown struct {
	Code           string  `json:"code"`
	Units          int     `json:"units"`
	Score          float64 `json:"score"`
	Letter         string  `json:"letter"`
	GradePoint     float64 `json:"grade_point"`
	WeightedPoints float64 `json:"weighted_points"`
	Carryover      bool    `json:"carryover"`
}

// Result is everything one Aggregate call derives, including the ordered
// step log shown to users.
type Result struct {
	Table   string            `json:"table"`
	Courses []CourseBreakdown `json:"courses"`

	SemesterUnits  int     `json:"semester_units"`
	SemesterPoints float64 `json:"semester_points"`
	GPA            float64 `json:"gpa"`

	PriorCGPA   float64 `json:"prior_cgpa"`
	PriorUnits  int     `json:"prior_units"`
	PriorPoints float64 `json:"prior_points"`

	CumulativePoints float64 `json:"cumulative_points"`
	CumulativeUnits  int     `json:"cumulative_units"`
	CGPA             float64 `json:"cgpa"`

	Steps []string `json:"steps"`
}

// DisplayGPA is the semester GPA rounded for display.
func (r Result) DisplayGPA() float64 {
	return Round(r.GPA, DisplayPrecision)
}

// DisplayCGPA is the cumulative GPA rounded for display.
func (r Result) DisplayCGPA() float64 {
	return Round(r.CGPA, DisplayPrecision)
}

// Carryovers returns the breakdown rows that fell in the failing band.
func (r Result) Carryovers() []CourseBreakdown {
	var out []CourseBreakdown
	for _, c := range r.Courses {
		if c.Carryover {
			out = append(out, c)
		}
	}
	return out
}

// Engine computes semester GPA and cumulative CGPA. It holds no mutable
// state; one Engine may serve any number of goroutines.
type Engine struct {
	classifier Classifier
}

// NewEngine returns an engine grading with c.
func NewEngine(c Classifier) Engine {
	return Engine{classifier: c}
}

// Classifier returns the classifier the engine grades with.
func (e Engine) Classifier() Classifier {
	return e.classifier
}

var defaultEngine = NewEngine(defaultClassifier)

// Aggregate runs the default engine.
func Aggregate(courses []ScoredCourse, prior PriorState) Result {
	return defaultEngine.Aggregate(courses, prior)
}

// Aggregate grades every course, totals the semester, folds in the prior
// cumulative state and records each arithmetic step. The input slice is
// never modified. Empty input, zero units and no history all yield zeros
// rather than errors.
func (e Engine) Aggregate(courses []ScoredCourse, prior PriorState) Result {
	table := e.classifier.Table()
	res := Result{
		Table:   table.Name(),
		Courses: make([]CourseBreakdown, 0, len(courses)),
	}
	res.step("Grading scale: %s", table)

	if prior.Units < 0 {
		prior.Units = 0
	}
	if prior.Units == 0 || prior.CGPA < 0 {
		prior.CGPA = 0
	}

	if len(courses) == 0 && prior.Units == 0 {
		res.step("No courses or prior history: nothing to compute")
		return res
	}
	if len(courses) == 0 {
		res.step("No courses this semester")
	}

	for _, c := range courses {
		g := e.classifier.Classify(c.Score)
		units := c.Units
		if units < 0 {
			units = 0
		}
		weighted := round6(float64(units) * g.Points)

		res.Courses = append(res.Courses, CourseBreakdown{
			Code:           c.Code,
			Units:          units,
			Score:          c.Score,
			Letter:         g.Letter,
			GradePoint:     g.Points,
			WeightedPoints: weighted,
			Carryover:      g.Band == table.Lowest(),
		})
		res.SemesterUnits += units
		res.SemesterPoints = round6(res.SemesterPoints + weighted)

		note := ""
		if g.Clamped {
			note = fmt.Sprintf(" [score outside %d-%d, graded as %d-%d band]", MinScore, MaxScore, g.Band.Min, g.Band.Max)
		}
		res.step("%s: score %s -> %s -> %.2f points (%d units x %.2f = %.2f)%s",
			c.Code, formatScore(c.Score), g.Letter, g.Points, units, g.Points, weighted, note)
	}

	res.step("Semester totals: %d units, %.2f grade points", res.SemesterUnits, res.SemesterPoints)
	if res.SemesterUnits == 0 {
		res.step("Semester GPA: no units this semester = 0.00")
	} else {
		res.GPA = round6(res.SemesterPoints / float64(res.SemesterUnits))
		res.step("Semester GPA: %.2f / %d = %.2f", res.SemesterPoints, res.SemesterUnits, res.GPA)
	}

	res.PriorCGPA = prior.CGPA
	res.PriorUnits = prior.Units
	if prior.Units == 0 {
		res.step("Prior grade points: no prior history = 0.00")
	} else {
		res.PriorPoints = round6(prior.CGPA * float64(prior.Units))
		res.step("Prior grade points: %.2f CGPA x %d units = %.2f", prior.CGPA, prior.Units, res.PriorPoints)
	}

	res.CumulativePoints = round6(res.PriorPoints + res.SemesterPoints)
	res.CumulativeUnits = prior.Units + res.SemesterUnits
	res.step("Cumulative totals: %.2f + %.2f = %.2f grade points over %d + %d = %d units",
		res.PriorPoints, res.SemesterPoints, res.CumulativePoints,
		prior.Units, res.SemesterUnits, res.CumulativeUnits)

	if res.CumulativeUnits == 0 {
		res.step("CGPA: no units recorded = 0.00")
	} else {
		res.CGPA = round6(res.CumulativePoints / float64(res.CumulativeUnits))
		res.step("CGPA: %.2f / %d = %.2f", res.CumulativePoints, res.CumulativeUnits, res.DisplayCGPA())
	}

	return res
}

func (r *Result) step(format string, args ...any) {
	r.Steps = append(r.Steps, fmt.Sprintf(format, args...))
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
