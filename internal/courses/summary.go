package courses

import (
	"context"

	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/store"
)

// TermResult is one term of the academic history.
type TermResult struct {
	Term       Term    `json:"term"`
	Courses    int     `json:"courses"`
	Units      int     `json:"units"`
	GPA        float64 `json:"gpa"`
	CGPA       float64 `json:"cgpa"`
	Carryovers int     `json:"carryovers"`
}

// Summary is the student's standing across every recorded term.
type Summary struct {
	Profile Profile `json:"profile"`

	// Current is the aggregation for the profile's term, with every
	// earlier term folded into its prior state.
	Current grading.Result `json:"current"`

	CGPA       float64             `json:"cgpa"`
	TotalUnits int                 `json:"total_units"`
	Courses    int                 `json:"courses"`
	Carryovers int                 `json:"carryovers"`
	Class      grading.DegreeClass `json:"class"`
	History    []TermResult        `json:"history"`
}

// DisplayGPA is the current-term GPA rounded for display.
func (s Summary) DisplayGPA() float64 {
	return s.Current.DisplayGPA()
}

// DisplayCGPA is the overall CGPA rounded for display.
func (s Summary) DisplayCGPA() float64 {
	return grading.Round(s.CGPA, grading.DisplayPrecision)
}

// Summary folds every recorded term in chronological order, starting
// from the profile's prior CGPA and units.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.List(ctx, store.CourseFilter{})
	if err != nil {
		return nil, err
	}
	return Summarize(s.engine, p, all), nil
}

// Summarize is Summary over already-loaded data.
func Summarize(engine grading.Engine, p Profile, all []Course) *Summary {
	terms, groups := groupByTerm(all)
	current := p.Term()
	cl := engine.Classifier()

	sum := &Summary{Profile: p, Courses: len(all)}
	prior := grading.PriorState{CGPA: p.PriorCGPA, Units: p.PriorUnits}
	currentDone := false
	last := engine.Aggregate(nil, prior)

	for _, t := range terms {
		if !currentDone && current.Before(t) {
			sum.Current = engine.Aggregate(nil, prior)
			currentDone = true
		}

		cs := groups[t]
		scored := make([]grading.ScoredCourse, len(cs))
		carry := 0
		for i, c := range cs {
			scored[i] = c.Scored()
			if cl.IsCarryover(c.Score) {
				carry++
			}
		}

		res := engine.Aggregate(scored, prior)
		sum.History = append(sum.History, TermResult{
			Term:       t,
			Courses:    len(cs),
			Units:      res.SemesterUnits,
			GPA:        res.GPA,
			CGPA:       res.CGPA,
			Carryovers: carry,
		})
		sum.Carryovers += carry

		if t == current {
			sum.Current = res
			currentDone = true
		}
		prior = grading.PriorState{CGPA: res.CGPA, Units: res.CumulativeUnits}
		last = res
	}
	if !currentDone {
		sum.Current = engine.Aggregate(nil, prior)
	}

	sum.CGPA = last.CGPA
	sum.TotalUnits = last.CumulativeUnits
	sum.Class = grading.ClassOfDegree(sum.CGPA)
	return sum
}
