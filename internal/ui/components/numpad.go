package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/newton/internal/ui/theme"
)

// padRows is the on-screen number pad, phone layout.
var padRows = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{"C", "0", "OK"},
}

// NumPad renders the digit pad. It is display-only: keys are typed on the
// keyboard and Pressed highlights the last one.
type NumPad struct {
	Enabled bool
	Pressed string
}

// View renders the pad as a grid.
func (p NumPad) View() string {
	var rows []string
	for _, row := range padRows {
		cells := make([]string, len(row))
		for i, label := range row {
			cells[i] = p.cell(label)
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (p NumPad) cell(label string) string {
	text := lipgloss.PlaceHorizontal(2, lipgloss.Center, label)
	switch {
	case !p.Enabled:
		return theme.PadKeyDisabled.Render(text)
	case label == p.Pressed:
		return theme.PadKey.Foreground(theme.Accent).Render(text)
	default:
		return theme.PadKey.Render(text)
	}
}
