package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Layout)
	registryMu sync.RWMutex
)

// Register adds a layout to the registry.
// Panics if a layout with the same key is already registered.
func Register(l Layout) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[l.Key]; exists {
		panic(fmt.Sprintf("layout already registered: %s", l.Key))
	}
	if l.MinCells <= 0 {
		l.MinCells = 1
	}

	registry[l.Key] = l
}

// Get returns a layout by key.
// Returns false if not found.
func Get(key string) (Layout, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	l, ok := registry[key]
	return l, ok
}

// Lookup returns a layout by key or an error naming the known layouts.
func Lookup(key string) (Layout, error) {
	if l, ok := Get(key); ok {
		return l, nil
	}
	return Layout{}, fmt.Errorf("unknown layout %q (registered: %v)", key, Keys())
}

// Keys returns all registered layout keys, sorted.
func Keys() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LayoutCount returns the number of registered layouts.
func LayoutCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered layouts.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Layout)
}
