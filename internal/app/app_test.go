package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/screen"
	"github.com/great123-artV/GradeX/internal/store"
)

func newTestOptions(t *testing.T) Options {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "gradex.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	engine := grading.NewEngine(grading.NewClassifier(grading.BandTable{}))
	return Options{Courses: courses.NewService(st.CourseRepo(), st.ProfileRepo(), engine, nil), SkipSplash: true}
}

func TestStartsOnHome(t *testing.T) {
	m := newAppModel(newTestOptions(t))
	assert.Equal(t, "Home", m.router.Active().Title())

	opts := newTestOptions(t)
	opts.SkipSplash = false
	assert.Empty(t, newAppModel(opts).router.Active().Title())
}

func TestStandingBadgeAfterCourseAdded(t *testing.T) {
	opts := newTestOptions(t)
	m := newAppModel(opts)

	updated, cmd := m.Update(screen.StandingChangedMsg{})
	require.NotNil(t, cmd)
	updated, _ = updated.Update(cmd())
	badge, _ := updated.(AppModel).standingBadge()
	assert.Empty(t, badge, "no badge without a record")

	_, err := opts.Courses.Add(t.Context(), courses.CourseInput{
		Code: "MTH 101", Title: "Maths", Units: 3, Score: 72, Level: "100L", Semester: "1st",
	})
	require.NoError(t, err)

	updated, cmd = updated.Update(screen.StandingChangedMsg{})
	updated, _ = updated.Update(cmd())
	badge, cgpa := updated.(AppModel).standingBadge()
	assert.Contains(t, badge, "CGPA 5.00")
	assert.Equal(t, 5.0, cgpa)
}

func TestHomeRendersMenu(t *testing.T) {
	m := newAppModel(newTestOptions(t))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	am := updated.(AppModel)
	assert.Equal(t, 100, am.width)

	view := am.router.View(am.width, am.height)
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "Courses")
}
