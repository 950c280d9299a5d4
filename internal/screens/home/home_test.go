package home

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/store"
)

func newTestService(t *testing.T) *courses.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "gradex.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	engine := grading.NewEngine(grading.NewClassifier(grading.BandTable{}))
	return courses.NewService(st.CourseRepo(), st.ProfileRepo(), engine, nil)
}

func load(t *testing.T, h *HomeScreen) {
	t.Helper()
	cmd := h.Init()
	require.NotNil(t, cmd)
	h.Update(cmd())
}

func TestAssistantDisabledWithoutAssistant(t *testing.T) {
	h := New(newTestService(t), nil)
	require.Len(t, h.menu.Items, 4)
	assert.Equal(t, "Smart Assistant", h.menu.Items[2].Label)
	assert.True(t, h.menu.Items[2].Disabled)
	assert.False(t, h.menu.Items[0].Disabled)
}

func TestGreetingBeforeLoad(t *testing.T) {
	h := New(newTestService(t), nil)
	assert.Contains(t, h.View(100, 30), "Loading your record")
}

func TestGreetingEmptyRecord(t *testing.T) {
	h := New(newTestService(t), nil)
	load(t, h)

	view := h.View(100, 30)
	assert.Contains(t, view, "Add your first course")
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "Courses")
}

func TestGreetingShowsStanding(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.SaveProfile(ctx, courses.ProfileInput{Name: "Ada", Level: "100L", Semester: "1st"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, courses.CourseInput{
		Code: "MTH 101", Title: "Elementary Mathematics", Units: 3, Score: 75, Level: "100L", Semester: "1st",
	})
	require.NoError(t, err)

	h := New(svc, nil)
	load(t, h)

	view := h.View(120, 30)
	assert.Contains(t, view, "Welcome back, Ada")
	assert.Contains(t, view, "CGPA 5.00")
	assert.Contains(t, view, "First Class")
}
