package session

import (
	"time"

	"github.com/abhisek/newton/internal/phrases"
	"github.com/abhisek/newton/internal/problemgen"
)

// Phase is the current phase of a level session.
type Phase int

const (
	PhaseIntro         Phase = iota // waiting for the player to start
	PhaseAwaitingInput              // problem shown, pad enabled
	PhaseEvaluating                 // submission being checked
	PhaseCelebrating                // correct feedback, pad disabled
	PhaseRejecting                  // wrong feedback, pad disabled
	PhaseCompleted                  // target reached
	PhaseAborted                    // player left
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseCelebrating:
		return "celebrating"
	case PhaseRejecting:
		return "rejecting"
	case PhaseCompleted:
		return "completed"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ignores all further events.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseAborted
}

// Delays are the feedback durations.
type Delays struct {
	Advance  time.Duration // correct answer, more to go
	Retry    time.Duration // wrong answer
	Complete time.Duration // final correct answer
}

// DefaultDelays returns the standard feedback durations.
func DefaultDelays() Delays {
	return Delays{
		Advance:  1500 * time.Millisecond,
		Retry:    1500 * time.Millisecond,
		Complete: 2000 * time.Millisecond,
	}
}

// Config parameterizes a single level run.
type Config struct {
	Level       int
	Problem     problemgen.Config
	TargetScore int
}

// Env holds the collaborators a Step may consult.
type Env struct {
	Generator *problemgen.Generator
	Phrases   phrases.Set
	Rand      phrases.Rand
	Delays    Delays
}

// State is the complete state of one level run. It is a value: Step never
// mutates its argument.
type State struct {
	ID      string
	Config  Config
	Phase   Phase
	Problem problemgen.Problem
	Input   Input
	Score   Score

	// PendingTimer is the only timer whose expiry will be honoured.
	PendingTimer TimerID

	// LastTimer is the most recently issued timer ID.
	LastTimer TimerID

	// Attempts counts evaluated submissions.
	Attempts int

	// ProblemCount counts problems shown.
	ProblemCount int
}

// NewState returns the intro state for a level run.
func NewState(id string, cfg Config) State {
	return State{
		ID:     id,
		Config: cfg,
		Phase:  PhaseIntro,
		Score:  NewScore(cfg.TargetScore),
	}
}
