// Package registry provides a global registry for level packs.
// Packs register themselves in init() functions, allowing the CLI and the
// engine to discover layouts without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// LevelDef is one brick layout: rows of brick-type codes, 0 for empty.
type LevelDef struct {
	Name string  `yaml:"name"`
	Grid [][]int `yaml:"grid"`
}

// Pack is an ordered list of levels played in sequence.
type Pack struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Levels []LevelDef `yaml:"levels"`
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

// ErrUnknownPack is returned for pack IDs that were never registered.
var ErrUnknownPack = errors.New("registry: unknown pack")

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a level pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(p Pack) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.ID]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", p.ID))
	}
	packs[p.ID] = p
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, p := range packs {
		result = append(result, PackInfo{
			ID:     id,
			Title:  p.Title,
			Levels: len(p.Levels),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered pack by its ID.
// Returns an error if the pack ID is not registered.
func Get(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("%w %q", ErrUnknownPack, id)
	}
	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
