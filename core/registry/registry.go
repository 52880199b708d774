package registry

import "sync"

// Registry is a mutex-guarded key-value store with per-key locking.
// Extension registries (cmd, cron, api, graphql) keep their entries here so
// registration can be frozen once the application has applied them.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = New()

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores a value under key. Writes to a locked key are ignored;
// callers (the extension registries) check IsLocked and panic themselves so
// the failure points at the offending init().
func (r *Registry) SetGlobal(key string, v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		return
	}
	r.values[key] = v
}

// Lock freezes a key. Subsequent SetGlobal calls for it are no-ops.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

// IsLocked reports whether a key has been frozen.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting re-opens a locked key so tests can re-register entries.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = false
}
