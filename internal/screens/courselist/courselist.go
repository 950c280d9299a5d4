// Package courselist lists the recorded courses and edits them.
package courselist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
	"github.com/great123-artV/GradeX/internal/store"
	"github.com/great123-artV/GradeX/internal/ui/layout"
	"github.com/great123-artV/GradeX/internal/ui/theme"
)

type coursesLoadedMsg struct {
	Courses []courses.Course
	Err     error
}

type courseDeletedMsg struct {
	Code string
	Err  error
}

// ListScreen shows every course with its derived grade.
type ListScreen struct {
	svc      *courses.Service
	list     []courses.Course
	selected int
	loaded   bool
	confirm  bool
	status   string
	errMsg   string
}

var (
	_ screen.Screen          = (*ListScreen)(nil)
	_ screen.KeyHintProvider = (*ListScreen)(nil)
	_ screen.Refresher       = (*ListScreen)(nil)
)

// New creates a ListScreen over svc.
func New(svc *courses.Service) *ListScreen {
	return &ListScreen{svc: svc}
}

func (s *ListScreen) Init() tea.Cmd {
	return s.Refresh()
}

// Refresh reloads the course list.
func (s *ListScreen) Refresh() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		list, err := svc.List(context.Background(), store.CourseFilter{})
		return coursesLoadedMsg{Courses: list, Err: err}
	}
}

func (s *ListScreen) Title() string {
	return "Courses"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "y", Description: "Delete"},
			{Key: "n", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "a", Description: "Add"},
		{Key: "e", Description: "Edit"},
		{Key: "d", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.list, s.errMsg = msg.Courses, ""
		s.selected = min(s.selected, max(len(s.list)-1, 0))
		return s, nil

	case courseDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.status = "Deleted " + msg.Code
		return s, tea.Batch(s.Refresh(), standingChanged)

	case tea.KeyMsg:
		if s.confirm {
			s.confirm = false
			if msg.String() == "y" {
				return s, s.delete()
			}
			s.status = ""
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.list)-1 {
				s.selected++
			}
		case "a":
			s.status = ""
			return s, router.Push(NewForm(s.svc, nil))
		case "e", "enter":
			if c := s.current(); c != nil {
				s.status = ""
				return s, router.Push(NewForm(s.svc, c))
			}
		case "d":
			if c := s.current(); c != nil {
				s.confirm = true
				s.status = fmt.Sprintf("Delete %s (%s)? y/n", c.Code, c.Term())
			}
		}
	}
	return s, nil
}

func standingChanged() tea.Msg {
	return screen.StandingChangedMsg{}
}

func (s *ListScreen) current() *courses.Course {
	if s.selected < 0 || s.selected >= len(s.list) {
		return nil
	}
	c := s.list[s.selected]
	return &c
}

func (s *ListScreen) delete() tea.Cmd {
	c := s.current()
	svc := s.svc
	return func() tea.Msg {
		err := svc.Delete(context.Background(), c.ID)
		return courseDeletedMsg{Code: c.Code, Err: err}
	}
}

func (s *ListScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading courses...")
	}

	var b strings.Builder
	b.WriteString("\n")
	if s.errMsg != "" {
		b.WriteString(theme.ErrorText.Render("  "+s.errMsg) + "\n\n")
	}
	if len(s.list) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).
			Render("No courses yet. Press a to add one."))
		return b.String()
	}

	cl := s.svc.Classifier()
	header := fmt.Sprintf("  %-10s %-28s %-10s %5s %6s %5s", "CODE", "TITLE", "TERM", "UNITS", "SCORE", "GRADE")
	b.WriteString(theme.Label.Render(header) + "\n")

	// Keep the selection visible when the list outgrows the screen.
	rows := max(height-6, 1)
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}
	end := min(start+rows, len(s.list))

	for i := start; i < end; i++ {
		c := s.list[i]
		g := c.Grade(cl)
		line := fmt.Sprintf("%-10s %-28s %-10s %5d %6.1f ",
			c.Code, truncate(c.Title, 28), c.Term().Label(), c.Units, c.Score)
		grade := lipgloss.NewStyle().Foreground(theme.GradeColor(g.Letter)).Bold(true).Render(fmt.Sprintf("%5s", g.Letter))
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ "+line) + grade + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + grade + "\n")
		}
	}

	if s.status != "" {
		b.WriteString("\n" + theme.Hint.Render("  "+s.status))
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
