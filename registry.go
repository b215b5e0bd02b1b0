package enum

import (
	"fmt"
	"sync"
)

// registry is the process-wide mapping of enum name to Enum. It is
// write-once per name: the only writer is a successful New call, and an
// existing name is never overwritten.
var (
	registry = make(map[string]*Enum)
	mu       sync.RWMutex
)

// register inserts e under its name. The check and insert happen under one
// lock so that concurrent New calls racing on a name admit exactly one
// winner.
func register(e *Enum) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[e.name]; exists {
		return fmt.Errorf("create enum %q: %w", e.name, ErrDuplicateEnum)
	}
	registry[e.name] = e
	return nil
}

// Lookup returns the registered enum with the given name.
func Lookup(name string) (*Enum, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := registry[name]
	return e, ok
}

// Enums returns a snapshot of every registered enum by name.
// The returned map is an independent copy; mutating it does not affect the
// registry.
func Enums() map[string]*Enum {
	mu.RLock()
	defer mu.RUnlock()

	snapshot := make(map[string]*Enum, len(registry))
	for name, e := range registry {
		snapshot[name] = e
	}
	return snapshot
}

// Reset empties the registry, making every name available again.
// This is primarily useful for testing; production code has no reason to
// call it, since registered enums are otherwise permanent for the life of
// the process.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	registry = make(map[string]*Enum)
}
