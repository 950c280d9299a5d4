// Package home is the dashboard's main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
	"github.com/great123-artV/GradeX/internal/screens/chat"
	"github.com/great123-artV/GradeX/internal/screens/courselist"
	"github.com/great123-artV/GradeX/internal/screens/dashboard"
	"github.com/great123-artV/GradeX/internal/ui/components"
	"github.com/great123-artV/GradeX/internal/ui/theme"
)

type summaryLoadedMsg struct {
	Summary *courses.Summary
	Err     error
}

// HomeScreen is the main menu with a one-line greeting.
type HomeScreen struct {
	svc     *courses.Service
	menu    components.Menu
	summary *courses.Summary
	errMsg  string
}

var (
	_ screen.Screen    = (*HomeScreen)(nil)
	_ screen.Refresher = (*HomeScreen)(nil)
)

// New creates the home screen. asst may be nil, which disables the
// assistant entry.
func New(svc *courses.Service, asst *assistant.Assistant) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:       "Dashboard",
			Description: "CGPA, semester GPA, class of degree and how they were worked out",
			Action:      func() tea.Cmd { return router.Push(dashboard.New(svc)) },
		},
		{
			Label:       "Courses",
			Description: "Add, review and remove recorded courses",
			Action:      func() tea.Cmd { return router.Push(courselist.New(svc)) },
		},
		{
			Label:       "Smart Assistant",
			Description: "Ask about your GPA, study plans or where to go on campus",
			Disabled:    asst == nil,
			Action:      func() tea.Cmd { return router.Push(chat.New(asst)) },
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}
	return &HomeScreen{svc: svc, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) Refresh() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		s, err := svc.Summary(context.Background())
		return summaryLoadedMsg{Summary: s, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(summaryLoadedMsg); ok {
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		} else {
			h.summary, h.errMsg = msg.Summary, ""
		}
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("GRADEX"), h.greeting(), "")
	if h.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(h.errMsg), "")
	}
	sections = append(sections, lipgloss.NewStyle().Width(40).Render(h.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (h *HomeScreen) greeting() string {
	s := h.summary
	if s == nil {
		return theme.Subtitle.Render("Loading your record...")
	}
	name := s.Profile.Name
	if name == "" {
		name = assistant.DefaultName
	}
	if s.Courses == 0 && s.Profile.PriorUnits == 0 {
		return theme.Subtitle.Render(fmt.Sprintf("Welcome, %s. Add your first course to see your CGPA.", name))
	}
	parts := []string{
		fmt.Sprintf("Welcome back, %s", name),
		lipgloss.NewStyle().Foreground(theme.StandingColor(s.CGPA)).Bold(true).
			Render(fmt.Sprintf("CGPA %.2f", s.DisplayCGPA())),
		s.Class.DisplayName(),
	}
	return theme.Subtitle.Render(strings.Join(parts, " · "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
