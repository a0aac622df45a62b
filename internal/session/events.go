package session

import "time"

// Event is anything that drives a Step: a player command or a timer expiry.
type Event interface {
	isEvent()
}

// Advance moves from the intro to the first problem.
type Advance struct{}

// DigitEntered appends a digit to the answer.
type DigitEntered struct {
	Digit int
}

// ClearRequested empties the answer.
type ClearRequested struct{}

// SubmitRequested evaluates the answer.
type SubmitRequested struct{}

// AbortRequested leaves the level.
type AbortRequested struct{}

// TimerFired reports that a previously requested timer has elapsed.
type TimerFired struct {
	ID   TimerID
	Kind TimerKind
}

func (Advance) isEvent()         {}
func (DigitEntered) isEvent()    {}
func (ClearRequested) isEvent()  {}
func (SubmitRequested) isEvent() {}
func (AbortRequested) isEvent()  {}
func (TimerFired) isEvent()      {}

// TimerID identifies a timer request. IDs increase monotonically per session;
// zero means no timer.
type TimerID uint64

// TimerKind says what should happen when a timer fires.
type TimerKind int

const (
	TimerAdvance  TimerKind = iota + 1 // show the next problem
	TimerRetry                         // re-enable input on the same problem
	TimerComplete                      // finish the level
)

func (k TimerKind) String() string {
	switch k {
	case TimerAdvance:
		return "advance"
	case TimerRetry:
		return "retry"
	case TimerComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// TimerRequest asks the host to deliver TimerFired{ID, Kind} after Delay.
type TimerRequest struct {
	ID    TimerID
	Kind  TimerKind
	Delay time.Duration
}

// Notification is an outbound message for presentation and persistence.
type Notification interface {
	isNotification()
}

// ProblemDisplayed is emitted whenever a new problem is shown.
type ProblemDisplayed struct {
	Question string
}

// InputChanged is emitted whenever the answer slot changes.
type InputChanged struct {
	Display string
}

// AnswerCorrect is emitted after a correct submission.
type AnswerCorrect struct {
	Score     int
	Target    int
	Praise    string
	Question  string
	Submitted string
}

// AnswerIncorrect is emitted after a wrong submission.
type AnswerIncorrect struct {
	Message   string
	Question  string
	Submitted string
}

// LevelCompleted is emitted once the target score has been reached and the
// final celebration has elapsed.
type LevelCompleted struct {
	Score  int
	Target int
}

// SessionAborted is emitted when the player leaves the level.
type SessionAborted struct{}

func (ProblemDisplayed) isNotification() {}
func (InputChanged) isNotification()     {}
func (AnswerCorrect) isNotification()    {}
func (AnswerIncorrect) isNotification()  {}
func (LevelCompleted) isNotification()   {}
func (SessionAborted) isNotification()   {}

// Effects is everything a Step asks of the outside world.
type Effects struct {
	Notifications []Notification
	Timers        []TimerRequest

	// Cancel tells the host that all outstanding timers for this session
	// are void.
	Cancel bool
}

func (e *Effects) notify(n ...Notification) {
	e.Notifications = append(e.Notifications, n...)
}
