// Package complete shows the end-of-level celebration and then returns to
// level select.
package complete

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screen"
	"github.com/abhisek/newton/internal/ui/components"
	"github.com/abhisek/newton/internal/ui/layout"
	"github.com/abhisek/newton/internal/ui/theme"
)

// AutoReturnDelay is how long the screen stays up without input.
const AutoReturnDelay = 3 * time.Second

// Result summarizes a finished level run.
type Result struct {
	LevelName string
	Score     int
	Target    int
	Attempts  int
}

// returnMsg fires after AutoReturnDelay.
type returnMsg struct {
	id uint64
}

var nextID atomic.Uint64

// CompleteScreen displays a finished level.
type CompleteScreen struct {
	id     uint64
	result Result
	replay func() screen.Screen
	done   bool
}

var _ screen.Screen = (*CompleteScreen)(nil)
var _ screen.KeyHintProvider = (*CompleteScreen)(nil)

// New creates a CompleteScreen. replay, when non-nil, builds a fresh run of
// the same level.
func New(result Result, replay func() screen.Screen) *CompleteScreen {
	return &CompleteScreen{
		id:     nextID.Add(1),
		result: result,
		replay: replay,
	}
}

func (s *CompleteScreen) Init() tea.Cmd {
	id := s.id
	return tea.Tick(AutoReturnDelay, func(time.Time) tea.Msg {
		return returnMsg{id: id}
	})
}

func (s *CompleteScreen) Title() string {
	return "Level Complete"
}

func (s *CompleteScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Levels"}}
	if s.replay != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return hints
}

func (s *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case returnMsg:
		if msg.id != s.id {
			return s, nil
		}
		return s, s.leave()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "space":
			return s, s.leave()
		case "r", "R":
			if s.replay != nil && !s.done {
				s.done = true
				next := s.replay()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		}
	}
	return s, nil
}

// leave pops back to level select once; later triggers are ignored.
func (s *CompleteScreen) leave() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *CompleteScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString(theme.Title.Render("LEVEL COMPLETE!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(r.LevelName))
	b.WriteString("\n\n")
	b.WriteString(components.NewScoreBar(r.Score, r.Target).View())
	b.WriteString("\n\n")
	if r.Attempts > 0 {
		b.WriteString(theme.Body.Render(fmt.Sprintf("%d answers, %d right", r.Attempts, r.Score)))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("Back to the levels in a moment..."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...))
}
