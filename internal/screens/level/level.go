// Package level is the play screen for a single level run.
package level

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/progress"
	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screen"
	"github.com/abhisek/newton/internal/screens/complete"
	sess "github.com/abhisek/newton/internal/session"
	"github.com/abhisek/newton/internal/ui/components"
	"github.com/abhisek/newton/internal/ui/layout"
)

// Deps are the collaborators a level screen needs.
type Deps struct {
	Level    levels.Level
	Env      sess.Env
	Recorder *progress.Recorder // nil disables persistence
	NewID    func() string      // session ID source; uuid when nil
}

// LevelScreen renders a level run and feeds player keys into it.
type LevelScreen struct {
	deps    Deps
	session *sess.Session
	keys    keyMap

	question string
	display  string
	feedback string
	correct  bool
	pressed  string
}

var _ screen.Screen = (*LevelScreen)(nil)
var _ screen.KeyHintProvider = (*LevelScreen)(nil)
var _ screen.BackHandler = (*LevelScreen)(nil)
var _ screen.StatusProvider = (*LevelScreen)(nil)

// New creates a LevelScreen in the intro phase.
func New(deps Deps) *LevelScreen {
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	cfg := sess.Config{
		Level:       deps.Level.ID,
		Problem:     deps.Level.ProblemConfig(),
		TargetScore: deps.Level.TargetScore,
	}
	return &LevelScreen{
		deps:    deps,
		session: sess.New(deps.NewID(), cfg, deps.Env),
		keys:    defaultKeys(),
		display: sess.EmptyDisplay,
	}
}

func (s *LevelScreen) Init() tea.Cmd {
	if s.deps.Recorder != nil {
		s.deps.Recorder.Start(context.Background(), s.session.State())
	}
	return nil
}

func (s *LevelScreen) Title() string {
	return s.deps.Level.Name
}

// HandlesBack reports that Esc aborts the run instead of a plain pop.
func (s *LevelScreen) HandlesBack() bool {
	return true
}

func (s *LevelScreen) Status() string {
	st := s.session.State()
	return st.Score.String()
}

func (s *LevelScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case sess.PhaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Levels"},
		}
	case sess.PhaseAwaitingInput:
		return []layout.KeyHint{
			hint(s.keys.Digit),
			hint(s.keys.Submit),
			hint(s.keys.Clear),
			hint(s.keys.Back),
		}
	default:
		return []layout.KeyHint{hint(s.keys.Back)}
	}
}

func (s *LevelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if msg.SessionID != s.session.ID() {
			return s, nil
		}
		return s, s.apply(msg.Timer)

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *LevelScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Back):
		return s.apply(sess.AbortRequested{})
	case key.Matches(msg, s.keys.Submit):
		s.pressed = "OK"
		if s.session.Phase() == sess.PhaseIntro {
			return s.apply(sess.Advance{})
		}
		return s.apply(sess.SubmitRequested{})
	case key.Matches(msg, s.keys.Clear):
		s.pressed = "C"
		return s.apply(sess.ClearRequested{})
	case key.Matches(msg, s.keys.Digit):
		k := msg.String()
		s.pressed = k
		return s.apply(sess.DigitEntered{Digit: int(k[0] - '0')})
	}
	return nil
}

// apply runs ev through the session, records and renders the resulting
// notifications, and schedules any requested timers.
func (s *LevelScreen) apply(ev sess.Event) tea.Cmd {
	fx := s.session.Handle(ev)
	if s.deps.Recorder != nil && len(fx.Notifications) > 0 {
		s.deps.Recorder.Observe(context.Background(), s.session.State(), fx.Notifications)
	}

	var cmds []tea.Cmd
	for _, n := range fx.Notifications {
		switch n := n.(type) {
		case sess.ProblemDisplayed:
			s.question = n.Question
			s.feedback = ""
		case sess.InputChanged:
			s.display = n.Display
			if s.session.Phase() == sess.PhaseAwaitingInput && n.Display == sess.EmptyDisplay {
				s.feedback = ""
			}
		case sess.AnswerCorrect:
			s.feedback = n.Praise
			s.correct = true
		case sess.AnswerIncorrect:
			s.feedback = n.Message
			s.correct = false
		case sess.LevelCompleted:
			cmds = append(cmds, s.showComplete(n))
		case sess.SessionAborted:
			cmds = append(cmds, func() tea.Msg { return router.PopScreenMsg{} })
		}
	}

	id := s.session.ID()
	for _, t := range fx.Timers {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return timerFiredMsg{SessionID: id, Timer: sess.TimerFired{ID: t.ID, Kind: t.Kind}}
		}))
	}
	return tea.Batch(cmds...)
}

func (s *LevelScreen) showComplete(n sess.LevelCompleted) tea.Cmd {
	deps := s.deps
	result := complete.Result{
		LevelName: deps.Level.Name,
		Score:     n.Score,
		Target:    n.Target,
		Attempts:  s.session.State().Attempts,
	}
	replay := func() screen.Screen { return New(deps) }
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: complete.New(result, replay)}
	}
}

func (s *LevelScreen) padEnabled() bool {
	return s.session.Phase() == sess.PhaseAwaitingInput
}

func (s *LevelScreen) scoreBar() components.ScoreBar {
	st := s.session.State()
	return components.NewScoreBar(st.Score.Correct, st.Score.Target)
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
