package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltInLevels(t *testing.T) {
	all := Default().All()
	require.Len(t, all, 3)

	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 10, all[0].MaxSum)
	assert.Equal(t, 5, all[0].TargetScore)
	assert.True(t, all[0].Available)

	assert.Equal(t, 2, all[1].ID)
	assert.Equal(t, 20, all[1].MaxSum)
	assert.Equal(t, 10, all[1].TargetScore)
	assert.True(t, all[1].Available)

	assert.Equal(t, 3, all[2].ID)
	assert.False(t, all[2].Available)
}

func TestCatalog_Playable(t *testing.T) {
	c := Default()

	l, err := c.Playable(2)
	require.NoError(t, err)
	assert.Equal(t, 20, l.ProblemConfig().MaxSum)

	_, err = c.Playable(3)
	assert.True(t, errors.Is(err, ErrUnavailable))

	_, err = c.Playable(42)
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].MaxSum = 99

	l, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 10, l.MaxSum)
}

func TestParse_SortsByID(t *testing.T) {
	data := []byte(`
levels:
  - id: 2
    name: Two
    max_sum: 20
    target_score: 3
    available: true
  - id: 1
    name: One
    max_sum: 5
    target_score: 2
`)
	c, err := Parse(data)
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.False(t, all[0].Available)
	assert.Equal(t, 2, all[1].ID)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "levels: [\n"},
		{"missing levels", "foo: 1\n"},
		{"empty levels", "levels: []\n"},
		{"missing target", "levels:\n  - id: 1\n    name: A\n    max_sum: 10\n"},
		{"max sum too large", "levels:\n  - id: 1\n    name: A\n    max_sum: 100\n    target_score: 5\n"},
		{"zero target", "levels:\n  - id: 1\n    name: A\n    max_sum: 10\n    target_score: 0\n"},
		{"unknown field", "levels:\n  - id: 1\n    name: A\n    max_sum: 10\n    target_score: 5\n    speed: 3\n"},
		{"duplicate id", "levels:\n  - id: 1\n    name: A\n    max_sum: 10\n    target_score: 5\n  - id: 1\n    name: B\n    max_sum: 10\n    target_score: 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)

	path := filepath.Join(t.TempDir(), "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("levels:\n  - id: 7\n    name: Seven\n    max_sum: 7\n    target_score: 1\n    available: true\n"), 0o644))

	c, err = Load(path)
	require.NoError(t, err)
	l, err := c.Playable(7)
	require.NoError(t, err)
	assert.Equal(t, "Seven", l.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
