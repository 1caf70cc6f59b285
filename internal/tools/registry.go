package tools

import (
	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// Registry holds the named tools available to the model. It is produced by
// RegistryBuilder.Build and never mutated afterwards, so concurrent lookups
// need no locking.
type Registry struct {
	order []string
	tools map[string]schema.ToolDescriptor
}

// Lookup returns the tool with the given name.
func (r *Registry) Lookup(name string) (schema.ToolDescriptor, bool) {
	d, ok := r.tools[name]
	return d, ok
}

// All returns every tool in registration order.
func (r *Registry) All() []schema.ToolDescriptor {
	out := make([]schema.ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int { return len(r.order) }
