// Package messages collects build diagnostics into named groups so they can
// be rendered once per emission instead of the moment they are discovered.
package messages

import "sync"

// Registry holds named groups of diagnostic messages. Groups accumulate
// while a build step runs and are fetched or flushed when its outcome is
// reported. All methods are safe for concurrent use; create a Registry with
// NewRegistry.
type Registry struct {
	mu     sync.Mutex
	groups map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{groups: make(map[string][]string)}
}

// Add appends a message to the named group. A message already present in
// the group is dropped, so a finding hit from several places surfaces once.
// Adding to the empty group name is a no-op.
func (r *Registry) Add(group, message string) {
	if group == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.groups[group] {
		if m == message {
			return
		}
	}
	r.groups[group] = append(r.groups[group], message)
}

// Count returns how many messages the group currently holds.
func (r *Registry) Count(group string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.groups[group])
}

// Fetch returns a copy of the group's messages in insertion order without
// clearing them.
func (r *Registry) Fetch(group string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.groups[group]...)
}

// Flush returns the group's messages and empties the group in one step, so
// two concurrent reporters can never both claim the same messages.
func (r *Registry) Flush(group string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.groups[group]
	delete(r.groups, group)
	return out
}

// Clear drops every message the group holds.
func (r *Registry) Clear(group string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.groups, group)
}
