package app

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/newton/internal/levels"
	"github.com/abhisek/newton/internal/router"
	"github.com/abhisek/newton/internal/screens/home"
	"github.com/abhisek/newton/internal/screens/level"
)

func esc() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestNewAppModelStartsAtLevelSelect(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	m.Init()
	assert.Equal(t, 1, m.router.Depth())
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestStartLevelOpensLevelScreen(t *testing.T) {
	m, err := newAppModel(Options{StartLevel: 2})
	require.NoError(t, err)

	m.Init()
	require.Equal(t, 2, m.router.Depth())
	lvl, ok := m.router.Active().(*level.LevelScreen)
	require.True(t, ok)
	assert.Equal(t, "Level 2", lvl.Title())
}

func TestStartLevelRejectsLockedAndUnknown(t *testing.T) {
	_, err := newAppModel(Options{StartLevel: 3})
	assert.True(t, errors.Is(err, levels.ErrUnavailable))

	_, err = newAppModel(Options{StartLevel: 42})
	assert.True(t, errors.Is(err, levels.ErrUnknownLevel))
}

func TestEscOnLevelScreenAbortsThroughSession(t *testing.T) {
	m, err := newAppModel(Options{StartLevel: 1})
	require.NoError(t, err)
	m.Init()

	m, cmd := update(m, esc())
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(router.PopScreenMsg)
	require.True(t, ok, "expected PopScreenMsg, got %T", msg)

	m, _ = update(m, msg)
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscAtRootIsNoop(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	m, cmd := update(m, esc())
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestFooterHintsFollowActiveScreen(t *testing.T) {
	m, err := newAppModel(Options{StartLevel: 1})
	require.NoError(t, err)
	m.Init()

	hints := m.footerHints(m.router.Active())
	keys := make([]string, len(hints))
	for i, h := range hints {
		keys[i] = h.Key
	}
	assert.Contains(t, keys, "Enter")
	assert.Contains(t, keys, "Esc")
}

func TestViewUsesAltScreen(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.True(t, m.View().AltScreen)

	m, _ = update(m, tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.True(t, m.View().AltScreen)
}
