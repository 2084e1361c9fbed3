// Package registry keeps the playable modes. Modes register a factory in
// init() and front ends discover them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// Game is the interface that every playable mode implements.
// Modes hold pure logic; the platform handles input, timing and display.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "skyshooter").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, paused).
	State() core.GameState
}

// Describer is implemented by modes with a one-line description for
// listings.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode factory. Metadata is read from one throwaway
// instance. Panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns information about all registered modes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata of a registered mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new mode by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
