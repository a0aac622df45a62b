package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screen"
	"github.com/abhisek/newton/internal/screens/history"
	"github.com/abhisek/newton/internal/screens/placeholder"
	"github.com/abhisek/newton/internal/store"
)

type fakeRepo struct {
	completed map[int]int
	err       error
	calls     int
}

func (f *fakeRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (f *fakeRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (f *fakeRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (f *fakeRepo) CompletedLevels(context.Context) (map[int]int, error) {
	f.calls++
	return f.completed, f.err
}
func (f *fakeRepo) AnswerStats(context.Context, store.QueryOpts) (store.AnswerStats, error) {
	return store.AnswerStats{}, nil
}
func (f *fakeRepo) Reset(context.Context) error { return nil }

type stubLevelScreen struct {
	level levels.Level
}

func (s *stubLevelScreen) Init() tea.Cmd                           { return nil }
func (s *stubLevelScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubLevelScreen) View(int, int) string                    { return s.level.Name }
func (s *stubLevelScreen) Title() string                           { return s.level.Name }

func newHome(repo store.EventRepo) *HomeScreen {
	return New(levels.Default(), repo, func(l levels.Level) screen.Screen {
		return &stubLevelScreen{level: l}
	})
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

// selectItem moves to index and presses Enter, returning the resulting message.
func selectItem(t *testing.T, h *HomeScreen, index int) tea.Msg {
	t.Helper()
	for i := 0; i < index; i++ {
		h.Update(down())
	}
	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	return cmd()
}

func TestMenuListsLevelsHistoryAndQuit(t *testing.T) {
	h := newHome(&fakeRepo{})

	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{"Level 1", "Level 2", "Level 3", "History", "Quit"}, labels)
	assert.Equal(t, "🔒", h.menu.Items[2].Badge)
}

func TestMenuWithoutRepoHasNoHistory(t *testing.T) {
	h := newHome(nil)

	assert.Nil(t, h.Init())
	last := h.menu.Items[len(h.menu.Items)-1]
	assert.Equal(t, "Quit", last.Label)
	for _, item := range h.menu.Items {
		assert.NotEqual(t, "History", item.Label)
	}
}

func TestSelectPlayableLevelPushesLevelScreen(t *testing.T) {
	h := newHome(&fakeRepo{})

	msg := selectItem(t, h, 1)
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	stub, ok := push.Screen.(*stubLevelScreen)
	require.True(t, ok)
	assert.Equal(t, 2, stub.level.ID)
}

func TestSelectLockedLevelPushesPlaceholder(t *testing.T) {
	h := newHome(&fakeRepo{})

	msg := selectItem(t, h, 2)
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok)
	p, ok := push.Screen.(*placeholder.PlaceholderScreen)
	require.True(t, ok)
	assert.Equal(t, "Level 3", p.Title())
}

func TestSelectHistoryPushesHistory(t *testing.T) {
	h := newHome(&fakeRepo{})

	msg := selectItem(t, h, 3)
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*history.HistoryScreen)
	assert.True(t, ok)
}

func TestSelectQuit(t *testing.T) {
	h := newHome(&fakeRepo{})

	msg := selectItem(t, h, 4)
	_, ok := msg.(tea.QuitMsg)
	assert.True(t, ok)
}

func TestProgressBadgesAndStatus(t *testing.T) {
	repo := &fakeRepo{completed: map[int]int{1: 2, 2: 7}}
	h := newHome(repo)

	cmd := h.Init()
	require.NotNil(t, cmd)
	h.Update(cmd())

	assert.Equal(t, "★★", h.menu.Items[0].Badge)
	assert.Equal(t, "★★★", h.menu.Items[1].Badge)
	assert.Equal(t, "★ 2/3", h.Status())
	assert.True(t, strings.Contains(h.View(80, 30), "★★"))
}

func TestResumeReloadsProgressAndKeepsSelection(t *testing.T) {
	repo := &fakeRepo{completed: map[int]int{}}
	h := newHome(repo)
	h.Update(h.Init()())
	h.Update(down())

	repo.completed = map[int]int{2: 1}
	cmd := h.Resume()
	require.NotNil(t, cmd)
	h.Update(cmd())

	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, 1, h.menu.Selected)
	assert.Equal(t, "★", h.menu.Items[1].Badge)
}

func TestProgressErrorKeepsPreviousState(t *testing.T) {
	repo := &fakeRepo{completed: map[int]int{1: 1}}
	h := newHome(repo)
	h.Update(h.Init()())

	repo.err = errors.New("disk gone")
	h.Update(h.Resume()())

	assert.Equal(t, "★", h.menu.Items[0].Badge)
}
