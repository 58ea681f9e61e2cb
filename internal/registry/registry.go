// Package registry provides a global registry of playable variants.
// Variants register themselves in init() functions, allowing the hosts
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Game is what a host drives: semantic input in, one step at a time, a
// frame drawn onto a Surface. Implementations contain pure logic with no
// Bubble Tea or Ebitengine dependencies.
type Game interface {
	// ID returns the variant identifier (e.g., "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Size returns the playfield dimensions in surface pixels.
	Size() (w, h float64)

	// Apply feeds one frame of semantic input (movement, launch, pause...).
	Apply(in core.InputFrame)

	// Step advances the simulation by one fixed tick.
	// StepResult.NextFrame tells the host whether to keep ticking.
	Step() core.StepResult

	// Render draws the current frame onto dst.
	Render(dst core.Surface)

	// State returns the current game state summary.
	State() core.GameState

	// SetLabels attaches a sink for score, lives and level changes.
	SetLabels(l core.Labels)
}

// Options are handed to a factory when a variant is instantiated.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger // May be nil
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Order int // Display position in menus; ties sort by ID
}

// Factory creates a new instance of a variant.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered variants in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
