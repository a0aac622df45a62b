// Package levels defines the playable levels. Every level is the same game
// with a different numeric range and target score.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/newton/internal/problemgen"
)

var (
	// ErrUnknownLevel is returned when no level has the requested ID.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrUnavailable is returned for levels that are announced but locked.
	ErrUnavailable = errors.New("level not available yet")
)

//go:embed levels.yaml
var defaultCatalogYAML []byte

var defaultCatalog = mustParse(defaultCatalogYAML)

// Level is one parameterization of the game.
type Level struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	MaxSum      int    `yaml:"max_sum"`
	TargetScore int    `yaml:"target_score"`
	Available   bool   `yaml:"available"`
}

// ProblemConfig returns the generator config for this level.
func (l Level) ProblemConfig() problemgen.Config {
	return problemgen.Config{MaxSum: l.MaxSum}
}

// Catalog is an ordered, validated set of levels.
type Catalog struct {
	levels []Level
}

type catalogFile struct {
	Levels []Level `yaml:"levels"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Load reads and validates a catalog file. An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels file %s: %w", path, err)
	}
	return c, nil
}

// Parse validates YAML catalog data against the schema and decodes it.
func Parse(data []byte) (*Catalog, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}

	seen := make(map[int]bool, len(file.Levels))
	for _, l := range file.Levels {
		if seen[l.ID] {
			return nil, fmt.Errorf("duplicate level id %d", l.ID)
		}
		seen[l.ID] = true
		if err := l.ProblemConfig().Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", l.ID, err)
		}
	}

	levels := append([]Level(nil), file.Levels...)
	sort.Slice(levels, func(i, j int) bool { return levels[i].ID < levels[j].ID })
	return &Catalog{levels: levels}, nil
}

// All returns the levels ordered by ID.
func (c *Catalog) All() []Level {
	return append([]Level(nil), c.levels...)
}

// Get returns the level with the given ID.
func (c *Catalog) Get(id int) (Level, error) {
	for _, l := range c.levels {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
}

// Playable returns the level if it exists and is available.
func (c *Catalog) Playable(id int) (Level, error) {
	l, err := c.Get(id)
	if err != nil {
		return Level{}, err
	}
	if !l.Available {
		return Level{}, fmt.Errorf("level %d: %w", id, ErrUnavailable)
	}
	return l, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("levels: built-in catalog: %v", err))
	}
	return c
}
