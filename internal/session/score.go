package session

import "fmt"

// Score tracks correct answers toward a level's target.
type Score struct {
	Correct int
	Target  int
}

// NewScore returns an empty score for the given target.
func NewScore(target int) Score {
	return Score{Target: target}
}

// RecordCorrect returns the score with one more correct answer.
// It panics when the target has already been reached.
func (s Score) RecordCorrect() Score {
	if s.IsComplete() {
		panic(fmt.Sprintf("session: RecordCorrect on complete score %d/%d", s.Correct, s.Target))
	}
	s.Correct++
	return s
}

// IsComplete returns true once the target has been reached.
func (s Score) IsComplete() bool {
	return s.Correct >= s.Target
}

// Remaining returns how many correct answers are still needed.
func (s Score) Remaining() int {
	if s.IsComplete() {
		return 0
	}
	return s.Target - s.Correct
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Target)
}
