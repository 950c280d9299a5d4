// Package app is the root Bubble Tea model of the terminal dashboard.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
	"github.com/great123-artV/GradeX/internal/screens/home"
	"github.com/great123-artV/GradeX/internal/screens/welcome"
	"github.com/great123-artV/GradeX/internal/ui/layout"
	"github.com/great123-artV/GradeX/internal/ui/theme"
)

// Options wires the dashboard to its services. Assistant may be nil.
type Options struct {
	Courses   *courses.Service
	Assistant *assistant.Assistant

	// SkipSplash opens straight on the home screen.
	SkipSplash bool
}

type standingMsg struct {
	Summary *courses.Summary
	Err     error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	opts     Options
	standing *courses.Summary
	width    int
	height   int
}

// newAppModel creates a new AppModel on the splash or the home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Courses, opts.Assistant)
	}
	var first screen.Screen
	if opts.SkipSplash {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}
	return AppModel{
		router: router.New(first),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadStanding())
}

func (m AppModel) loadStanding() tea.Cmd {
	svc := m.opts.Courses
	return func() tea.Msg {
		s, err := svc.Summary(context.Background())
		return standingMsg{Summary: s, Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case standingMsg:
		if msg.Err == nil {
			m.standing = msg.Summary
		}
		return m, nil

	case screen.StandingChangedMsg:
		return m, m.loadStanding()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) standingBadge() (string, float64) {
	s := m.standing
	if s == nil || (s.Courses == 0 && s.Profile.PriorUnits == 0) {
		return "", 0
	}
	return fmt.Sprintf("CGPA %.2f · %s  ", s.DisplayCGPA(), s.Class.DisplayName()), s.CGPA
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	badge, cgpa := m.standingBadge()
	header := layout.RenderHeader(title, badge, theme.StandingColor(cgpa), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
