// Package registry keeps the game factories the CLI and platforms can start.
// Games register themselves in init() so frontends never import them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lawn-defense/internal/core"
)

// Game is what a platform drives. Games hold pure logic with no Bubble Tea
// or window dependencies; the platform maps input, keeps time and renders.
type Game interface {
	// ID is the stable identifier used by the CLI and the score table.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a new run with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game-over and pause flags.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting the run. Platforms fall back to Reset otherwise.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
