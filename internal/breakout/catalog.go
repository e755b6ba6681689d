package breakout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/nexus-breakout/internal/registry"
)

// DefaultPack is the level pack played when none is selected.
const DefaultPack = "nexus"

// ErrUnknownLevel is returned for level indices outside the catalog.
var ErrUnknownLevel = errors.New("catalog: unknown level")

// Level is an immutable grid of brick-type codes, 0 for empty.
type Level struct {
	Name string
	Grid [][]int
}

// Rows returns the number of brick rows.
func (l Level) Rows() int { return len(l.Grid) }

// Cols returns the number of brick columns.
func (l Level) Cols() int {
	if len(l.Grid) == 0 {
		return 0
	}
	return len(l.Grid[0])
}

// Clone creates a deep copy of the level.
func (l Level) Clone() Level {
	grid := make([][]int, len(l.Grid))
	for i, row := range l.Grid {
		grid[i] = make([]int, len(row))
		copy(grid[i], row)
	}
	return Level{Name: l.Name, Grid: grid}
}

// Catalog is an ordered list of levels.
type Catalog struct {
	id     string
	title  string
	levels []Level
}

// NewCatalog validates a level pack and builds a catalog from it.
// Every grid must be non-empty, rectangular and hold codes 0..7.
func NewCatalog(p registry.Pack) (*Catalog, error) {
	if len(p.Levels) == 0 {
		return nil, fmt.Errorf("catalog: pack %q has no levels", p.ID)
	}

	c := &Catalog{id: p.ID, title: p.Title}
	for i, def := range p.Levels {
		lvl := Level{Name: def.Name, Grid: def.Grid}
		if err := validateLevel(lvl); err != nil {
			return nil, fmt.Errorf("catalog: pack %q level %d: %w", p.ID, i, err)
		}
		if lvl.Name == "" {
			lvl.Name = fmt.Sprintf("Level %d", i+1)
		}
		c.levels = append(c.levels, lvl.Clone())
	}
	return c, nil
}

func validateLevel(l Level) error {
	if l.Rows() == 0 || l.Cols() == 0 {
		return errors.New("empty grid")
	}
	for r, row := range l.Grid {
		if len(row) != l.Cols() {
			return fmt.Errorf("row %d has %d cells, expected %d", r, len(row), l.Cols())
		}
		for c, code := range row {
			if code != int(BrickNone) && !BrickType(code).Valid() {
				return fmt.Errorf("cell (%d,%d): unknown brick code %d", r, c, code)
			}
		}
	}
	return nil
}

// ID returns the pack identifier.
func (c *Catalog) ID() string { return c.id }

// Title returns the pack's display name.
func (c *Catalog) Title() string { return c.title }

// Len returns the number of levels.
func (c *Catalog) Len() int { return len(c.levels) }

// Level returns a copy of the level at index i.
func (c *Catalog) Level(i int) (Level, error) {
	if i < 0 || i >= len(c.levels) {
		return Level{}, fmt.Errorf("%w: %d of %d", ErrUnknownLevel, i, len(c.levels))
	}
	return c.levels[i].Clone(), nil
}

// Next returns the index following i, wrapping to 0 after the last level.
func (c *Catalog) Next(i int) int {
	if i+1 >= len(c.levels) {
		return 0
	}
	return i + 1
}

// LoadCatalog reads a level pack from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var p registry.Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if p.ID == "" {
		p.ID = path
	}
	return NewCatalog(p)
}

// CatalogFor builds a catalog from a registered pack.
func CatalogFor(id string) (*Catalog, error) {
	p, err := registry.Get(id)
	if err != nil {
		return nil, err
	}
	return NewCatalog(p)
}

// DefaultCatalog returns the built-in default pack.
func DefaultCatalog() *Catalog {
	c, err := CatalogFor(DefaultPack)
	if err != nil {
		panic(fmt.Sprintf("breakout: builtin pack: %v", err))
	}
	return c
}
