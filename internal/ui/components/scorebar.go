package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/newton/internal/ui/theme"
)

// ScoreBar shows progress toward a level target as a row of stars.
type ScoreBar struct {
	Correct int
	Target  int
}

// NewScoreBar creates a score bar.
func NewScoreBar(correct, target int) ScoreBar {
	return ScoreBar{Correct: correct, Target: target}
}

// View renders e.g. "★★★☆☆  3/5".
func (s ScoreBar) View() string {
	filled := s.Correct
	if filled > s.Target {
		filled = s.Target
	}
	if filled < 0 {
		filled = 0
	}
	empty := s.Target - filled
	if empty < 0 {
		empty = 0
	}

	return theme.ProgressFilled.Render(strings.Repeat("★", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("☆", empty)) +
		theme.Hint.Render(fmt.Sprintf("  %d/%d", s.Correct, s.Target))
}
