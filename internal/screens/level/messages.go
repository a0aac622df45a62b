package level

import sess "github.com/abhisek/newton/internal/session"

// timerFiredMsg delivers a feedback timer back to the screen that asked for
// it. SessionID lets the screen drop timers from an earlier run.
type timerFiredMsg struct {
	SessionID string
	Timer     sess.TimerFired
}
