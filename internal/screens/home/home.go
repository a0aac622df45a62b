// Package home is the level select screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screen"
	"github.com/abhisek/newton/internal/screens/history"
	"github.com/abhisek/newton/internal/screens/placeholder"
	"github.com/abhisek/newton/internal/store"
	"github.com/abhisek/newton/internal/ui/components"
	"github.com/abhisek/newton/internal/ui/layout"
	"github.com/abhisek/newton/internal/ui/theme"
)

const banner = `╔╗╔╔═╗╦ ╦╔╦╗╔═╗╔╗╔
║║║║╣ ║║║ ║ ║ ║║║║
╝╚╝╚═╝╚╩╝ ╩ ╚═╝╝╚╝`

// LevelFactory builds the play screen for a level.
type LevelFactory func(levels.Level) screen.Screen

// progressLoadedMsg carries completion counts per level.
type progressLoadedMsg struct {
	Completed map[int]int
	Err       error
}

// HomeScreen lists the levels, history and quit.
type HomeScreen struct {
	catalog   *levels.Catalog
	eventRepo store.EventRepo
	newLevel  LevelFactory
	completed map[int]int
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. eventRepo may be nil, in which case progress
// and history are unavailable.
func New(catalog *levels.Catalog, eventRepo store.EventRepo, newLevel LevelFactory) *HomeScreen {
	h := &HomeScreen{
		catalog:   catalog,
		eventRepo: eventRepo,
		newLevel:  newLevel,
		completed: make(map[int]int),
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadProgress()
}

// Resume reloads progress after returning from a level.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadProgress()
}

func (h *HomeScreen) loadProgress() tea.Cmd {
	if h.eventRepo == nil {
		return nil
	}
	repo := h.eventRepo
	return func() tea.Msg {
		completed, err := repo.CompletedLevels(context.Background())
		return progressLoadedMsg{Completed: completed, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Choose a level"
}

// Status shows how many distinct levels have been completed.
func (h *HomeScreen) Status() string {
	return fmt.Sprintf("★ %d/%d", len(h.completed), len(h.catalog.All()))
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(progressLoadedMsg); ok {
		if msg.Err == nil && msg.Completed != nil {
			h.completed = msg.Completed
			selected := h.menu.Selected
			h.menu = components.NewMenu(h.menuItems())
			h.menu.Selected = selected
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem
	for _, lvl := range h.catalog.All() {
		item := components.MenuItem{
			Label:  lvl.Name,
			Detail: lvl.Description,
		}
		if n := h.completed[lvl.ID]; n > 0 {
			item.Badge = strings.Repeat("★", min(n, 3))
		}
		if lvl.Available {
			item.Action = func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: h.newLevel(lvl)}
				}
			}
		} else {
			item.Badge = "🔒"
			item.Action = func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New(lvl.Name, lvl.Description)}
				}
			}
		}
		items = append(items, item)
	}

	if h.eventRepo != nil {
		repo := h.eventRepo
		items = append(items, components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo, h.catalog)}
			}
		}})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
		return tea.Quit
	}})
	return items
}

func (h *HomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner),
		theme.Subtitle.Render("Sums in space"),
		h.menu.View(),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
