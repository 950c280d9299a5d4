package courselist

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
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

func addCourse(t *testing.T, svc *courses.Service, code string, score float64) *courses.Course {
	t.Helper()
	c, err := svc.Add(context.Background(), courses.CourseInput{
		Code: code, Title: "Course " + code, Units: 3, Score: score, Level: "100L", Semester: "1st",
	})
	require.NoError(t, err)
	return c
}

// run executes cmd and feeds every resulting message back into s.
func run(s screen.Screen, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	if cmd == nil {
		return out
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			out = append(out, run(s, c)...)
		}
		return out
	}
	out = append(out, msg)
	s.Update(msg)
	return out
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestListShowsGrades(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "MTH 101", 72)
	addCourse(t, svc, "PHY 101", 30)

	s := New(svc)
	run(s, s.Init())

	view := s.View(100, 30)
	assert.Contains(t, view, "MTH 101")
	assert.Contains(t, view, "PHY 101")
	assert.Contains(t, view, "F")
}

func TestEmptyList(t *testing.T) {
	s := New(newTestService(t))
	run(s, s.Init())
	assert.Contains(t, s.View(100, 30), "No courses yet")
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "MTH 101", 72)

	s := New(svc)
	run(s, s.Init())

	_, cmd := s.Update(key("d"))
	assert.Nil(t, cmd)
	assert.True(t, s.confirm)

	_, cmd = s.Update(key("n"))
	assert.Nil(t, cmd)
	assert.False(t, s.confirm)
	assert.Len(t, s.list, 1)

	s.Update(key("d"))
	_, cmd = s.Update(key("y"))
	require.NotNil(t, cmd)
	deleted, ok := cmd().(courseDeletedMsg)
	require.True(t, ok)
	require.NoError(t, deleted.Err)

	_, cmd = s.Update(deleted)
	msgs := run(s, cmd)
	assert.Contains(t, msgs, tea.Msg(screen.StandingChangedMsg{}))
	assert.Empty(t, s.list)

	list, err := svc.List(context.Background(), store.CourseFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Contains(t, s.status, "Deleted MTH 101")
}

func TestAddPushesForm(t *testing.T) {
	s := New(newTestService(t))
	run(s, s.Init())

	_, cmd := s.Update(key("a"))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Add Course", push.Screen.Title())
}

func TestFormSavesCourse(t *testing.T) {
	svc := newTestService(t)
	f := NewForm(svc, nil)
	values := []string{"mth  101", "General Mathematics", "", "69.5", "100l", "1st"}
	for i, v := range values {
		f.inputs[i].SetValue(v)
	}

	f.focus = len(f.inputs) - 1
	_, cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(courseSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	assert.Equal(t, "MTH 101", saved.Course.Code)
	assert.Equal(t, courses.DefaultUnits, saved.Course.Units)
	assert.Equal(t, 69.5, saved.Course.Score)

	_, cmd = f.Update(saved)
	require.NotNil(t, cmd)
}

func TestFormReportsFieldErrors(t *testing.T) {
	f := NewForm(newTestService(t), nil)
	f.inputs[0].SetValue("MTH 101")
	f.inputs[1].SetValue("Maths")
	f.inputs[3].SetValue("")
	f.inputs[4].SetValue("100L")
	f.inputs[5].SetValue("1st")

	f.focus = len(f.inputs) - 1
	_, cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "score is required", f.inputs[3].Err)
}

func TestFormShowsValidationFromService(t *testing.T) {
	f := NewForm(newTestService(t), nil)
	values := []string{"MTH 101", "Maths", "3", "150", "100L", "3rd"}
	for i, v := range values {
		f.inputs[i].SetValue(v)
	}
	f.focus = len(f.inputs) - 1
	_, cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	f.Update(cmd())

	assert.NotEmpty(t, f.inputs[3].Err, "score out of range")
	assert.NotEmpty(t, f.inputs[5].Err, "semester not 1st or 2nd")
	assert.Empty(t, f.inputs[0].Err)
}

func TestEditFormPrefills(t *testing.T) {
	svc := newTestService(t)
	c := addCourse(t, svc, "MTH 101", 72)

	f := NewForm(svc, c)
	assert.Equal(t, "Edit MTH 101", f.Title())
	assert.Equal(t, "72", f.inputs[3].Value())

	f.inputs[3].SetValue("40")
	f.focus = len(f.inputs) - 1
	_, cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	saved := cmd().(courseSavedMsg)
	require.NoError(t, saved.Err)
	assert.Equal(t, c.ID, saved.Course.ID)
	assert.Equal(t, 40.0, saved.Course.Score)
}
