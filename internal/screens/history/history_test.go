package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/store"
)

type fakeRepo struct {
	sessions []store.SessionSummaryRecord
	stats    store.AnswerStats
	err      error
	opts     store.QueryOpts
}

func (f *fakeRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (f *fakeRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (f *fakeRepo) QuerySessionSummaries(_ context.Context, opts store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	f.opts = opts
	return f.sessions, f.err
}
func (f *fakeRepo) CompletedLevels(context.Context) (map[int]int, error) { return nil, nil }
func (f *fakeRepo) AnswerStats(context.Context, store.QueryOpts) (store.AnswerStats, error) {
	return f.stats, nil
}
func (f *fakeRepo) Reset(context.Context) error { return nil }

func loaded(t *testing.T, repo *fakeRepo) *HistoryScreen {
	t.Helper()
	s := New(repo, levels.Default())
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	return s
}

func TestLoadingView(t *testing.T) {
	s := New(&fakeRepo{}, nil)
	assert.Contains(t, s.View(80, 20), "Loading history")
}

func TestEmptyHistory(t *testing.T) {
	s := loaded(t, &fakeRepo{})
	assert.Contains(t, s.View(80, 20), "No sessions yet")
}

func TestErrorView(t *testing.T) {
	s := loaded(t, &fakeRepo{err: errors.New("boom")})
	assert.Contains(t, s.View(80, 20), "Error: boom")
}

func TestListsSessions(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		sessions: []store.SessionSummaryRecord{
			{SessionID: "b", LevelID: 2, StartedAt: started, Outcome: store.ActionAbort, Score: 3, Target: 10, Attempts: 4, Duration: 75 * time.Second},
			{SessionID: "a", LevelID: 1, StartedAt: started, Outcome: store.ActionComplete, Score: 5, Target: 5, Attempts: 6, Duration: 42 * time.Second},
			{SessionID: "c", LevelID: 9, StartedAt: started},
		},
		stats: store.AnswerStats{Total: 10, Correct: 8},
	}
	s := loaded(t, repo)
	view := s.View(120, 30)

	assert.Equal(t, maxSessions, repo.opts.Limit)
	assert.Contains(t, view, "10 answers  80% correct")
	assert.Contains(t, view, "stopped")
	assert.Contains(t, view, "completed")
	assert.Contains(t, view, "unfinished")
	assert.Contains(t, view, "1:15")
	assert.Contains(t, view, "5/5")
	assert.Contains(t, view, "Level 9")
}

func TestNavigationBounds(t *testing.T) {
	repo := &fakeRepo{sessions: []store.SessionSummaryRecord{{SessionID: "a"}, {SessionID: "b"}}}
	s := loaded(t, repo)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
}

func TestEscPops(t *testing.T) {
	s := loaded(t, &fakeRepo{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
