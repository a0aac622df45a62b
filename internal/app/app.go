// Package app hosts the root Bubble Tea model and its screen stack.
package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/progress"
	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screen"
	"github.com/abhisek/newton/internal/screens/home"
	"github.com/abhisek/newton/internal/screens/level"
	"github.com/abhisek/newton/internal/session"
	"github.com/abhisek/newton/internal/store"
	"github.com/abhisek/newton/internal/ui/layout"
)

// Options holds the dependencies the app needs.
type Options struct {
	Catalog   *levels.Catalog
	EventRepo store.EventRepo // nil disables history and progress
	Env       session.Env
	Logger    *slog.Logger

	// StartLevel, when non-zero, opens that level directly on top of
	// level select.
	StartLevel int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	start  screen.Screen
	width  int
	height int
}

// newAppModel creates a new AppModel with the level select screen.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Catalog == nil {
		opts.Catalog = levels.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	recorder := progress.NewRecorder(opts.EventRepo, opts.Logger)
	newLevel := func(l levels.Level) screen.Screen {
		return level.New(level.Deps{
			Level:    l,
			Env:      opts.Env,
			Recorder: recorder,
		})
	}

	m := AppModel{
		router: router.New(home.New(opts.Catalog, opts.EventRepo, newLevel)),
	}
	if opts.StartLevel != 0 {
		l, err := opts.Catalog.Playable(opts.StartLevel)
		if err != nil {
			return AppModel{}, fmt.Errorf("start level %d: %w", opts.StartLevel, err)
		}
		m.start = newLevel(l)
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.start != nil {
		cmds = append(cmds, m.router.Push(m.start))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		opts.Logger.Error("program exited", "error", err)
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
