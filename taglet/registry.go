package taglet

import (
	"sort"
)

// Registry maps tag names to their handlers. Block tags are keyed by
// their bare name, inline tags by "@" + name; InlineKey documents the
// convention. Registration overwrites: the last handler registered
// under a key is the one lookups see.
type Registry struct {
	taglets map[string]Taglet
}

// InlineKey returns the registry key for an inline tag name.
func InlineKey(name string) string {
	return "@" + name
}

// New constructs a registry seeded from the given descriptor lists.
// Block descriptors are keyed by bare name, inline descriptors by
// their inline key.
func New(block, inline []Taglet) *Registry {
	r := &Registry{taglets: map[string]Taglet{}}
	for _, t := range block {
		r.taglets[t.Name()] = t
	}
	for _, t := range inline {
		r.taglets[InlineKey(t.Name())] = t
	}
	return r
}

// NewDefault constructs a registry seeded with the standard block and
// inline tags.
func NewDefault() *Registry {
	return New(BlockTags(), InlineTags())
}

// Register inserts the handler under the given key, replacing any
// previous handler with that key.
func (r *Registry) Register(key string, t Taglet) {
	r.taglets[key] = t
}

// Lookup returns the handler registered under the exact key.
func (r *Registry) Lookup(key string) (Taglet, bool) {
	t, ok := r.taglets[key]
	return t, ok
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.taglets)
}

// Names returns the registered keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.taglets))
	for name := range r.taglets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
