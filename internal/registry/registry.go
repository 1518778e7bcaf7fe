// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/whack-arcade/internal/config"
)

// Variant is one playable flavour of the game: an occupant table plus the
// timings that go with it.
type Variant interface {
	// ID returns a unique identifier (e.g., "classic", "villain").
	// Used for CLI commands, config file names and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line blurb for menus and listings.
	Description() string

	// Config loads the variant's configuration. An empty customPath uses
	// the standard search order.
	Config(customPath string) (config.WhackConfig, error)
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Factory creates a variant.
type Factory func() Variant

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]VariantInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	v := f()
	infos[id] = VariantInfo{ID: id, Title: v.Title(), Description: v.Description()}
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
