package courselist

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
	"github.com/great123-artV/GradeX/internal/ui/components"
	"github.com/great123-artV/GradeX/internal/ui/layout"
	"github.com/great123-artV/GradeX/internal/ui/theme"
)

// Form field order. Each field's key is the input's JSON name so
// validation errors land on the right line.
var fieldKeys = []string{"code", "title", "units", "score", "level", "semester"}

type courseSavedMsg struct {
	Course *courses.Course
	Err    error
}

// FormScreen adds a course, or edits one when constructed with an existing
// course.
type FormScreen struct {
	svc     *courses.Service
	editing *courses.Course
	inputs  []components.TextInput
	focus   int
	errMsg  string
	saving  bool
}

var (
	_ screen.Screen          = (*FormScreen)(nil)
	_ screen.KeyHintProvider = (*FormScreen)(nil)
)

// NewForm creates a form. existing may be nil for a new course.
func NewForm(svc *courses.Service, existing *courses.Course) *FormScreen {
	inputs := []components.TextInput{
		components.NewTextInput("Course code", "MTH 101", components.AnyText, 12),
		components.NewTextInput("Title", "General Mathematics I", components.AnyText, 80),
		components.NewTextInput("Units", strconv.Itoa(courses.DefaultUnits), components.WholeNumber, 1),
		components.NewTextInput("Score (0-100)", "72", components.Decimal, 5),
		components.NewTextInput("Level", "100L", components.AnyText, 4),
		components.NewTextInput("Semester", "1st or 2nd", components.AnyText, 3),
	}
	if existing != nil {
		inputs[0].SetValue(existing.Code)
		inputs[1].SetValue(existing.Title)
		inputs[2].SetValue(strconv.Itoa(existing.Units))
		inputs[3].SetValue(strconv.FormatFloat(existing.Score, 'f', -1, 64))
		inputs[4].SetValue(existing.Level)
		inputs[5].SetValue(existing.Semester)
	}
	return &FormScreen{svc: svc, editing: existing, inputs: inputs}
}

func (f *FormScreen) Init() tea.Cmd {
	return f.inputs[0].Focus()
}

func (f *FormScreen) Title() string {
	if f.editing != nil {
		return "Edit " + f.editing.Code
	}
	return "Add Course"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case courseSavedMsg:
		f.saving = false
		if msg.Err != nil {
			f.showError(msg.Err)
			return f, nil
		}
		return f, tea.Batch(router.Pop(), standingChanged)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, router.Pop()
		case "tab", "down":
			return f, f.move(1)
		case "shift+tab", "up":
			return f, f.move(-1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f, f.move(1)
			}
			return f, f.save()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *FormScreen) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// Input collects the form into a course input. Number fields that do not
// parse are reported as field errors.
func (f *FormScreen) Input() (courses.CourseInput, error) {
	in := courses.CourseInput{
		Code:     f.inputs[0].Value(),
		Title:    f.inputs[1].Value(),
		Level:    f.inputs[4].Value(),
		Semester: f.inputs[5].Value(),
	}
	verr := &courses.ValidationError{}
	units, err := f.inputs[2].IntValue()
	if err != nil {
		verr.Fields = append(verr.Fields, courses.FieldError{Field: "units", Message: "units must be a whole number"})
	}
	in.Units = units
	if f.inputs[3].Value() == "" {
		verr.Fields = append(verr.Fields, courses.FieldError{Field: "score", Message: "score is required"})
	} else if score, err := f.inputs[3].FloatValue(); err != nil {
		verr.Fields = append(verr.Fields, courses.FieldError{Field: "score", Message: "score must be a number"})
	} else {
		in.Score = score
	}
	if len(verr.Fields) > 0 {
		return in, verr
	}
	return in, nil
}

func (f *FormScreen) save() tea.Cmd {
	if f.saving {
		return nil
	}
	f.clearErrors()
	in, err := f.Input()
	if err != nil {
		f.showError(err)
		return nil
	}
	f.saving = true
	svc, editing := f.svc, f.editing
	return func() tea.Msg {
		ctx := context.Background()
		if editing != nil {
			c, err := svc.Update(ctx, editing.ID, in)
			return courseSavedMsg{Course: c, Err: err}
		}
		c, err := svc.Add(ctx, in)
		return courseSavedMsg{Course: c, Err: err}
	}
}

func (f *FormScreen) clearErrors() {
	f.errMsg = ""
	for i := range f.inputs {
		f.inputs[i].Err = ""
	}
}

func (f *FormScreen) showError(err error) {
	var verr *courses.ValidationError
	if !errors.As(err, &verr) {
		f.errMsg = err.Error()
		return
	}
	byField := verr.Map()
	for i, key := range fieldKeys {
		f.inputs[i].Err = byField[key]
	}
}

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(f.Title()) + "\n\n")
	for i, in := range f.inputs {
		b.WriteString(indent(in.View()) + "\n")
		if i < len(f.inputs)-1 {
			b.WriteString("\n")
		}
	}
	if f.errMsg != "" {
		b.WriteString("\n" + theme.ErrorText.Render("    "+f.errMsg) + "\n")
	}
	if f.saving {
		b.WriteString("\n" + theme.Hint.Render("    Saving...") + "\n")
	}
	if f.editing == nil {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("    Units default to %d when left empty.", courses.DefaultUnits)))
	}
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "    " + lines[i]
	}
	return strings.Join(lines, "\n")
}
