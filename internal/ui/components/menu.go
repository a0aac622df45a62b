package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/newton/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Detail   string // dim text after the label
	Badge    string // right-hand decoration, e.g. stars
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Disabled items are shown but can't
// be selected.
type Menu struct {
	Items    []MenuItem
	Selected int
	Keys     MenuKeyMap
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
		Keys:     DefaultMenuKeys(),
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.Keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.Keys.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		var style lipgloss.Style
		prefix := "    "
		switch {
		case item.Disabled:
			style = theme.Disabled
		case i == m.Selected:
			style = theme.Selected
			prefix = "  ▸ "
		default:
			style = theme.Unselected
		}

		line := style.Render(prefix + item.Label)
		if item.Detail != "" {
			line += "  " + theme.Hint.Render(item.Detail)
		}
		if item.Badge != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(item.Badge)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
