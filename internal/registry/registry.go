// Package registry provides a global registry of court layouts.
// Courts register themselves in init() functions, so the CLI and the asset
// loader can discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-hoops/internal/config"
)

// DefaultCourt is the court used when none is chosen.
const DefaultCourt = "classic"

// CourtInfo contains metadata about a registered court.
type CourtInfo struct {
	ID          string
	Name        string
	Description string
}

// Factory returns a fresh copy of a court layout.
type Factory func() config.CourtConfig

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]CourtInfo)
	mu        sync.RWMutex
)

// Register adds a court factory to the registry.
// Panics if a court with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: court %q already registered", id))
	}

	factories[id] = f

	c := f()
	infos[id] = CourtInfo{ID: id, Name: c.Name, Description: c.Description}
}

// List returns information about all registered courts, sorted by ID.
func List() []CourtInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CourtInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the layout of a court by its ID.
// Returns an error if the court ID is not registered.
func Create(id string) (config.CourtConfig, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return config.CourtConfig{}, fmt.Errorf("registry: unknown court %q", id)
	}

	return f(), nil
}

// Exists checks if a court with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
