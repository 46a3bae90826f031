// Package registry provides a global registry of income-stream factories.
// Streams register themselves in init() functions, allowing the aggregator
// to discover and evaluate income categories without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"
)

// Stream is the interface every income category implements. Streams are
// pure: Compute is a deterministic function of the profile with no I/O and
// no shared state, so calls may run concurrently or be discarded freely.
type Stream interface {
	// ID returns a unique identifier for this stream (e.g., "claims").
	// Used for CLI commands, report keys and snapshot storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Expedition Claims").
	Title() string

	// Compute evaluates the stream's expected hourly income for the given
	// profile. The profile has already passed boundary validation; Compute
	// still reports degenerate or divergent configurations as errors
	// rather than returning a meaningless number.
	Compute(p config.Profile) (core.Breakdown, error)
}

// StreamInfo contains metadata about a registered stream.
type StreamInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a stream.
type Factory func() Stream

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a stream factory to the registry.
// Typically called from a stream's init() function.
// Panics if a stream with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: stream %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered streams, sorted by ID.
func List() []StreamInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StreamInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StreamInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new stream by its ID.
// Returns an error if the stream ID is not registered.
func Create(id string) (Stream, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown stream %q", id)
	}

	return f(), nil
}

// Exists checks if a stream with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
