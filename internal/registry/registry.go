// Package registry implements the process-wide serial -> sensor type map
// described in spec §3/§4.2. It is the simplest of the core's shared
// mutable stores: a single mutex guarding a plain map, reads returning
// copies rather than references.
package registry

import (
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// TypeRegistry maps sensor serial numbers to their last-seen type.
type TypeRegistry struct {
	mu    sync.Mutex
	types map[string]record.Type
}

// New returns an empty, ready-to-use TypeRegistry.
func New() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]record.Type)}
}

// Register records serial's type, overwriting any previous value. It is
// idempotent: registering the same (serial, type) pair repeatedly has no
// additional effect.
func (t *TypeRegistry) Register(serial string, typ record.Type) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.types[serial] = typ
}

// Get returns serial's registered type, or TypeUnknown if it has never
// been registered.
func (t *TypeRegistry) Get(serial string) record.Type {
	t.mu.Lock()
	defer t.mu.Unlock()
	typ, ok := t.types[serial]
	if !ok {
		return record.TypeUnknown
	}
	return typ
}

// Snapshot returns a read-only copy of the full registry; mutating the
// returned map never affects internal state.
func (t *TypeRegistry) Snapshot() map[string]record.Type {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]record.Type, len(t.types))
	for k, v := range t.types {
		out[k] = v
	}
	return out
}

// Count returns the number of distinct serials registered.
func (t *TypeRegistry) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.types)
}
