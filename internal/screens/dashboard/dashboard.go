// Package dashboard shows the student's standing: CGPA, the current
// semester, the term-by-term history and the steps behind the numbers.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/router"
	"github.com/great123-artV/GradeX/internal/screen"
	"github.com/great123-artV/GradeX/internal/ui/components"
	"github.com/great123-artV/GradeX/internal/ui/layout"
	"github.com/great123-artV/GradeX/internal/ui/theme"
)

// SummaryLoader supplies the standing to show.
type SummaryLoader interface {
	Summary(ctx context.Context) (*courses.Summary, error)
}

type summaryLoadedMsg struct {
	Summary *courses.Summary
	Err     error
}

// DashboardScreen renders a loaded summary. The steps pane scrolls.
type DashboardScreen struct {
	source  SummaryLoader
	summary *courses.Summary
	loaded  bool
	errMsg  string
	offset  int
}

var (
	_ screen.Screen          = (*DashboardScreen)(nil)
	_ screen.KeyHintProvider = (*DashboardScreen)(nil)
	_ screen.Refresher       = (*DashboardScreen)(nil)
)

// New creates a DashboardScreen over source.
func New(source SummaryLoader) *DashboardScreen {
	return &DashboardScreen{source: source}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return s.Refresh()
}

// Refresh reloads the summary.
func (s *DashboardScreen) Refresh() tea.Cmd {
	source := s.source
	return func() tea.Msg {
		sum, err := source.Summary(context.Background())
		return summaryLoadedMsg{Summary: sum, Err: err}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll steps"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.summary, s.errMsg, s.offset = msg.Summary, "", 0
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "r":
			return s, s.Refresh()
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.summary != nil && s.offset < len(s.summary.Current.Steps)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.errMsg != "":
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\n  Loading your record...")
	case s.summary.Courses == 0 && s.summary.Profile.PriorUnits == 0:
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No courses recorded yet. Add some from the Courses screen.")
	}

	sum := s.summary
	colWidth := max((width-6)/2, 30)
	left := lipgloss.JoinVertical(lipgloss.Left,
		theme.Card.Width(colWidth).Render(standing(sum)),
		theme.Card.Width(colWidth).Render(history(sum, colWidth-6)),
	)

	stepsHeight := max(height-4, 3)
	right := theme.Card.Width(colWidth).Render(s.steps(stepsHeight - 4))

	if layout.IsCompactWidth(width) {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func standing(sum *courses.Summary) string {
	big := lipgloss.NewStyle().Foreground(theme.StandingColor(sum.CGPA)).Bold(true)
	var b strings.Builder
	b.WriteString(theme.Label.Render("CGPA") + "  " + big.Render(fmt.Sprintf("%.2f", sum.DisplayCGPA())) + "\n")
	b.WriteString(theme.Body.Render(sum.Class.DisplayName()) + "\n\n")

	term := sum.Profile.Term()
	fmt.Fprintf(&b, "%s  %.2f\n", theme.Label.Render(term.String()+" GPA"), sum.DisplayGPA())
	fmt.Fprintf(&b, "%s  %d\n", theme.Label.Render("Units counted"), sum.TotalUnits)
	fmt.Fprintf(&b, "%s  %d\n", theme.Label.Render("Courses"), sum.Courses)

	carry := fmt.Sprintf("%d", sum.Carryovers)
	if sum.Carryovers > 0 {
		carry = theme.ErrorText.Render(carry)
	}
	b.WriteString(theme.Label.Render("Carryovers") + "  " + carry)
	return b.String()
}

func history(sum *courses.Summary, width int) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Semester GPA") + "\n")
	if len(sum.History) == 0 {
		b.WriteString(theme.Hint.Render("No semesters recorded"))
		return b.String()
	}
	for i, t := range sum.History {
		if i > 0 {
			b.WriteString("\n")
		}
		gpa := grading.Round(t.GPA, grading.DisplayPrecision)
		label := fmt.Sprintf("%-9s", t.Term.Label())
		b.WriteString(components.NewProgressBar(label, gpa, 5, width, theme.StandingColor(gpa)).View())
	}
	return b.String()
}

func (s *DashboardScreen) steps(lines int) string {
	all := s.summary.Current.Steps
	var b strings.Builder
	b.WriteString(theme.Label.Render("How this was worked out") + "\n\n")
	if len(all) == 0 {
		b.WriteString(theme.Hint.Render("No courses this semester"))
		return b.String()
	}
	end := min(s.offset+max(lines, 1), len(all))
	for i := s.offset; i < end; i++ {
		fmt.Fprintf(&b, "%s %s\n", theme.Hint.Render(fmt.Sprintf("%2d.", i+1)), theme.Body.Render(all[i]))
	}
	if end < len(all) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  ... %d more", len(all)-end)))
	}
	return b.String()
}
