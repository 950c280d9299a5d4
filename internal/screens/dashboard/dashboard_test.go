package dashboard

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/router"
)

type fixedSummary struct {
	sum *courses.Summary
	err error
}

func (f fixedSummary) Summary(context.Context) (*courses.Summary, error) {
	return f.sum, f.err
}

func sampleSummary() *courses.Summary {
	engine := grading.NewEngine(grading.NewClassifier(grading.DefaultBandTable()))
	p := courses.Profile{Name: "Ada", Level: "200L", Semester: "1st"}
	return courses.Summarize(engine, p, []courses.Course{
		{Code: "MTH 101", Units: 3, Score: 75, Level: "100L", Semester: "1st"},
		{Code: "PHY 101", Units: 2, Score: 30, Level: "100L", Semester: "1st"},
		{Code: "MTH 201", Units: 3, Score: 62, Level: "200L", Semester: "1st"},
	})
}

func load(t *testing.T, s *DashboardScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestLoadsAndRendersStanding(t *testing.T) {
	sum := sampleSummary()
	s := New(fixedSummary{sum: sum})
	load(t, s)

	view := s.View(120, 40)
	assert.Contains(t, view, "CGPA")
	assert.Contains(t, view, sum.Class.DisplayName())
	assert.Contains(t, view, "100L-1st")
	assert.Contains(t, view, "How this was worked out")
}

func TestEmptyRecord(t *testing.T) {
	engine := grading.NewEngine(grading.NewClassifier(grading.DefaultBandTable()))
	sum := courses.Summarize(engine, courses.Profile{Level: "100L", Semester: "1st"}, nil)
	s := New(fixedSummary{sum: sum})
	load(t, s)
	assert.Contains(t, s.View(120, 40), "No courses recorded yet")
}

func TestLoadError(t *testing.T) {
	s := New(fixedSummary{err: errors.New("disk on fire")})
	load(t, s)
	assert.Contains(t, s.View(120, 40), "disk on fire")
}

func TestScrollStaysInRange(t *testing.T) {
	s := New(fixedSummary{sum: sampleSummary()})
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Zero(t, s.offset)

	for range 100 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, len(s.summary.Current.Steps)-1, s.offset)
}

func TestEscPops(t *testing.T) {
	s := New(fixedSummary{sum: sampleSummary()})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
