package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/great123-artV/GradeX/internal/ui/theme"
)

// ProgressBar is a horizontal bar for a value out of a maximum, e.g. a
// GPA out of 5.
type ProgressBar struct {
	Label string
	Value float64
	Max   float64
	Width int
	Color color.Color
}

// NewProgressBar creates a bar filled in color.
func NewProgressBar(label string, value, maxValue float64, width int, fill color.Color) ProgressBar {
	return ProgressBar{Label: label, Value: value, Max: maxValue, Width: width, Color: fill}
}

// Fraction is Value/Max clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return min(max(p.Value/p.Max, 0), 1)
}

// View renders the label, the bar and the value.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	valueStr := fmt.Sprintf("  %.2f", p.Value)
	barWidth := max(p.Width-lipgloss.Width(result)-len(valueStr), 4)

	filled := int(float64(barWidth) * p.Fraction())
	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(valueStr)
	return result
}
