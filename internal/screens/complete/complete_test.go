package complete

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

func testResult() Result {
	return Result{LevelName: "Level 1", Score: 5, Target: 5, Attempts: 7}
}

func TestCompleteScreen_View(t *testing.T) {
	s := New(testResult(), nil)
	view := s.View(80, 24)
	for _, want := range []string{"LEVEL COMPLETE!", "Level 1", "5/5", "7 answers"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCompleteScreen_AutoReturn(t *testing.T) {
	s := New(testResult(), nil)
	if s.Init() == nil {
		t.Fatal("expected auto-return timer")
	}

	_, cmd := s.Update(returnMsg{id: s.id})
	if cmd == nil {
		t.Fatal("expected pop on auto-return")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("got %T, want PopScreenMsg", cmd())
	}
}

func TestCompleteScreen_IgnoresOtherTimers(t *testing.T) {
	s := New(testResult(), nil)
	_, cmd := s.Update(returnMsg{id: s.id + 1000})
	if cmd != nil {
		t.Error("expected foreign timer to be ignored")
	}
}

func TestCompleteScreen_LeavesOnce(t *testing.T) {
	s := New(testResult(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected pop on Enter")
	}

	// The auto-return timer arriving later must not pop a second screen.
	_, cmd = s.Update(returnMsg{id: s.id})
	if cmd != nil {
		t.Error("expected no second pop")
	}
}

func TestCompleteScreen_Replay(t *testing.T) {
	s := New(testResult(), func() screen.Screen { return stubScreen{} })
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected replace on R")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want ReplaceScreenMsg", cmd())
	}
	if msg.Screen.Title() != "stub" {
		t.Errorf("replacement title = %q", msg.Screen.Title())
	}
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}

func TestCompleteScreen_NoReplayWithoutFactory(t *testing.T) {
	s := New(testResult(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd != nil {
		t.Error("expected R to do nothing without a replay factory")
	}
}
