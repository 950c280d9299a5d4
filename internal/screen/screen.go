// Package screen defines the contract between the router and the
// dashboard's screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/great123-artV/GradeX/internal/ui/layout"
)

// Screen is one page of the terminal dashboard.
type Screen interface {
	// Init returns the command that loads the screen's data.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is implemented by screens whose data can change while another
// screen is on top of them. The router calls Refresh when the screen is
// revealed again.
type Refresher interface {
	Refresh() tea.Cmd
}

// StandingChangedMsg tells the app to reload the header's CGPA badge
// after courses or the profile change.
type StandingChangedMsg struct{}
