package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/newton/internal/screen"
	"github.com/abhisek/newton/internal/ui/theme"
)

// PlaceholderScreen announces something that can't be played yet.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen. An empty message uses a generic text.
func New(title, message string) *PlaceholderScreen {
	if message == "" {
		message = "Coming soon!"
	}
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + p.title + " ╌╌\n\n" + p.message + "\n\nThis level is still being built.")
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
