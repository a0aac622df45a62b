package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screen"
	"github.com/abhisek/newton/internal/store"
	"github.com/abhisek/newton/internal/ui/layout"
	"github.com/abhisek/newton/internal/ui/theme"
)

// maxSessions bounds how many past sessions are listed.
const maxSessions = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Stats    store.AnswerStats
	Err      error
}

// HistoryScreen displays past sessions and answer accuracy.
type HistoryScreen struct {
	eventRepo store.EventRepo
	catalog   *levels.Catalog
	sessions  []store.SessionSummaryRecord
	stats     store.AnswerStats
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. catalog resolves level names and may be nil.
func New(eventRepo store.EventRepo, catalog *levels.Catalog) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		catalog:   catalog,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: maxSessions})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats, err := repo.AnswerStats(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) levelName(id int) string {
	if s.catalog != nil {
		if lvl, err := s.catalog.Get(id); err == nil {
			return lvl.Name
		}
	}
	return fmt.Sprintf("Level %d", id)
}

// outcomeLabel renders a session outcome for display.
func outcomeLabel(rec store.SessionSummaryRecord) string {
	switch rec.Outcome {
	case store.ActionComplete:
		return "completed"
	case store.ActionAbort:
		return "stopped"
	default:
		return "unfinished"
	}
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Pick a level and blast off!")
	}

	var b strings.Builder
	b.WriteString("\n")

	summary := fmt.Sprintf("%d answers  %.0f%% correct", s.stats.Total, s.stats.Accuracy()*100)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Subtitle.Render(summary)))
	b.WriteString("\n\n")

	for i, rec := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-16s %-10s %d/%d  %d tries  %s",
			prefix,
			rec.StartedAt.Local().Format("Jan 02 15:04"),
			s.levelName(rec.LevelID),
			outcomeLabel(rec),
			rec.Score, rec.Target,
			rec.Attempts,
			formatDuration(int(rec.Duration.Seconds())))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case !rec.Finished():
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
