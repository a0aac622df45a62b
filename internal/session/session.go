// Package session implements a level run: problem, answer entry, feedback
// and scoring, as a transition function over an immutable State.
//
// Step never blocks and never starts goroutines. Feedback pauses are
// returned as TimerRequests; the host delivers TimerFired events back when
// they elapse. Only the most recently requested timer is honoured, so a
// timer that outlives an abort or a newer request is dropped on arrival.
package session

import (
	"time"

	"github.com/abhisek/newton/internal/phrases"
	"github.com/abhisek/newton/internal/problemgen"
)

// Step applies one event to a state and returns the next state along with
// the effects the host must carry out.
func Step(env Env, st State, ev Event) (State, Effects) {
	var fx Effects
	if st.Phase.Terminal() {
		return st, fx
	}

	switch ev := ev.(type) {
	case AbortRequested:
		st.Phase = PhaseAborted
		st.PendingTimer = 0
		st.Input = st.Input.Clear()
		fx.Cancel = true
		fx.notify(SessionAborted{})

	case Advance:
		if st.Phase != PhaseIntro {
			break
		}
		st.Score = NewScore(st.Config.TargetScore)
		st = showProblem(env, st, &fx)

	case DigitEntered:
		if st.Phase != PhaseAwaitingInput {
			break
		}
		next := st.Input.Append(ev.Digit)
		if next == st.Input {
			break
		}
		st.Input = next
		fx.notify(InputChanged{Display: st.Input.Display()})

	case ClearRequested:
		if st.Phase != PhaseAwaitingInput {
			break
		}
		st.Input = st.Input.Clear()
		fx.notify(InputChanged{Display: st.Input.Display()})

	case SubmitRequested:
		if st.Phase != PhaseAwaitingInput || st.Input.Empty() {
			break
		}
		st = evaluate(env, st, &fx)

	case TimerFired:
		st = expire(env, st, ev, &fx)
	}

	return st, fx
}

// evaluate checks the current answer and enters the matching feedback phase.
func evaluate(env Env, st State, fx *Effects) State {
	st.Phase = PhaseEvaluating
	st.Attempts++

	submitted := st.Input.Value()
	question := st.Problem.Question()

	switch problemgen.Evaluate(submitted, st.Problem.Answer) {
	case problemgen.OutcomeCorrect:
		st.Score = st.Score.RecordCorrect()
		st.Phase = PhaseCelebrating
		fx.notify(AnswerCorrect{
			Score:     st.Score.Correct,
			Target:    st.Score.Target,
			Praise:    env.Phrases.PickPraise(env.Rand),
			Question:  question,
			Submitted: submitted,
		})
		if st.Score.IsComplete() {
			st = schedule(st, fx, TimerComplete, env.Delays.Complete)
		} else {
			st = schedule(st, fx, TimerAdvance, env.Delays.Advance)
		}

	case problemgen.OutcomeIncorrect:
		st.Phase = PhaseRejecting
		fx.notify(AnswerIncorrect{
			Message:   env.Phrases.PickRetry(env.Rand),
			Question:  question,
			Submitted: submitted,
		})
		st = schedule(st, fx, TimerRetry, env.Delays.Retry)

	default:
		// Unreachable with a non-empty input; treat as a no-op.
		st.Phase = PhaseAwaitingInput
		st.Attempts--
	}
	return st
}

// expire handles a timer. Stale IDs and kinds that do not match the
// current phase are ignored.
func expire(env Env, st State, ev TimerFired, fx *Effects) State {
	if ev.ID == 0 || ev.ID != st.PendingTimer {
		return st
	}

	switch {
	case ev.Kind == TimerAdvance && st.Phase == PhaseCelebrating:
		st.PendingTimer = 0
		st = showProblem(env, st, fx)

	case ev.Kind == TimerComplete && st.Phase == PhaseCelebrating:
		st.PendingTimer = 0
		st.Phase = PhaseCompleted
		fx.notify(LevelCompleted{Score: st.Score.Correct, Target: st.Score.Target})

	case ev.Kind == TimerRetry && st.Phase == PhaseRejecting:
		st.PendingTimer = 0
		st.Input = st.Input.Clear()
		st.Phase = PhaseAwaitingInput
		fx.notify(InputChanged{Display: st.Input.Display()})
	}
	return st
}

func showProblem(env Env, st State, fx *Effects) State {
	st.Problem = env.Generator.Generate(st.Config.Problem)
	st.Input = st.Input.Clear()
	st.Phase = PhaseAwaitingInput
	st.ProblemCount++
	fx.notify(
		ProblemDisplayed{Question: st.Problem.Question()},
		InputChanged{Display: st.Input.Display()},
	)
	return st
}

func schedule(st State, fx *Effects, kind TimerKind, delay time.Duration) State {
	st.LastTimer++
	st.PendingTimer = st.LastTimer
	fx.Timers = append(fx.Timers, TimerRequest{ID: st.PendingTimer, Kind: kind, Delay: delay})
	return st
}

// Session owns the current State of one level run. It is not safe for
// concurrent use; the host's event loop is expected to be its only caller.
type Session struct {
	env   Env
	state State
}

// New creates a session in the intro phase. Missing collaborators in env are
// filled with defaults: a wall-clock seeded generator and random source,
// English phrases, and DefaultDelays.
func New(id string, cfg Config, env Env) *Session {
	return &Session{
		env:   withDefaults(env),
		state: NewState(id, cfg),
	}
}

// Handle applies ev and returns its effects.
func (s *Session) Handle(ev Event) Effects {
	var fx Effects
	s.state, fx = Step(s.env, s.state, ev)
	return fx
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.state.ID
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

func withDefaults(env Env) Env {
	if env.Rand == nil {
		env.Rand = problemgen.NewRand()
	}
	if env.Generator == nil {
		env.Generator = problemgen.NewSeeded()
	}
	if env.Phrases.Locale == "" {
		env.Phrases = phrases.ForLocale("en")
	}
	defaults := DefaultDelays()
	if env.Delays.Advance <= 0 {
		env.Delays.Advance = defaults.Advance
	}
	if env.Delays.Retry <= 0 {
		env.Delays.Retry = defaults.Retry
	}
	if env.Delays.Complete <= 0 {
		env.Delays.Complete = defaults.Complete
	}
	return env
}
