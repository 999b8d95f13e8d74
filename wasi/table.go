package wasi

import "sync"

// ResourceType identifies the type of a host resource for type-safe handle
// management.
type ResourceType uint8

const (
	ResourcePollable ResourceType = iota
)

// Resource is a host resource that can be managed by a Table.
type Resource interface {
	// Type returns the resource type identifier.
	Type() ResourceType
	// Drop releases any underlying resources.
	Drop()
}

// Table manages host resource handles. Handle 0 is reserved and always
// invalid. The table is safe for concurrent use.
type Table struct {
	mu      sync.Mutex
	next    uint32
	entries map[uint32]Resource
}

// NewTable creates an empty resource table.
func NewTable() *Table {
	return &Table{
		next:    1,
		entries: make(map[uint32]Resource),
	}
}

// Add stores a resource and returns a stable handle.
func (t *Table) Add(r Resource) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	handle := t.next
	t.next++
	t.entries[handle] = r
	return handle
}

// Get returns the resource for a handle, or (nil, false) if invalid.
func (t *Table) Get(handle uint32) (Resource, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.entries[handle]
	return r, ok
}

// Remove calls Drop on the resource and removes it from the table.
func (t *Table) Remove(handle uint32) {
	t.mu.Lock()
	r, ok := t.entries[handle]
	delete(t.entries, handle)
	t.mu.Unlock()

	if ok {
		r.Drop()
	}
}

// Len returns the number of active resources.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Clear drops and removes all resources. Used during shutdown.
func (t *Table) Clear() {
	t.mu.Lock()
	entries := t.entries
	t.entries = make(map[uint32]Resource)
	t.mu.Unlock()

	for _, r := range entries {
		r.Drop()
	}
}
