// Package registry provides a global registry of terminal backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starship/internal/audio"
	"github.com/vovakirdan/starship/internal/engine"
)

// Options is what every backend needs to run an animation locally.
type Options struct {
	Title   string
	Width   int // Initial terminal width, if known
	Height  int // Initial terminal height, if known
	Alerter audio.Alerter
	Logger  *log.Logger
}

// Runner animates scenes from build in the user's terminal until the user
// quits or ctx is cancelled.
type Runner func(ctx context.Context, build engine.Builder, opts Options) error

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

var (
	runners = make(map[string]Runner)
	titles  = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id, title string, r Runner) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := runners[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	runners[id] = r
	titles[id] = title
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(runners))
	for id := range runners {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the runner registered under id.
// Returns an error if the backend ID is not registered.
func Get(id string) (Runner, error) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := runners[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return r, nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := runners[id]
	return ok
}
