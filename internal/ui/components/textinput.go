package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/great123-artV/GradeX/internal/ui/theme"
)

// InputMode restricts which characters a TextInput accepts.
type InputMode int

const (
	AnyText InputMode = iota
	WholeNumber
	Decimal
)

// TextInput wraps bubbles/textinput with a label and an error line.
type TextInput struct {
	Model textinput.Model
	Label string
	Mode  InputMode
	Err   string
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, mode InputMode, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Label: label, Mode: mode}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages, dropping keys the mode does not allow.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.Mode != AnyText {
		key := kmsg.String()
		if len(key) == 1 && !t.allows(key[0]) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) allows(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return t.Mode == Decimal && c == '.' && !strings.Contains(t.Model.Value(), ".")
}

// View renders the label, the input and any error.
func (t TextInput) View() string {
	var b strings.Builder
	if t.Label != "" {
		b.WriteString(theme.Label.Render(t.Label) + "\n")
	}
	b.WriteString(t.Model.View())
	if t.Err != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.Err))
	}
	return b.String()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// IntValue parses the value as a whole number. Empty means 0.
func (t TextInput) IntValue() (int, error) {
	if t.Value() == "" {
		return 0, nil
	}
	return strconv.Atoi(t.Value())
}

// FloatValue parses the value as a decimal number.
func (t TextInput) FloatValue() (float64, error) {
	return strconv.ParseFloat(t.Value(), 64)
}
