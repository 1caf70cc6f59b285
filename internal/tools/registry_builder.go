package tools

import (
	"errors"
	"fmt"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	order []string
	tools map[string]schema.ToolDescriptor
	errs  []error
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{tools: make(map[string]schema.ToolDescriptor)}
}

// Register adds a tool. A second tool with the same name is rejected with
// *schema.DuplicateToolError rather than shadowing the first.
func (b *RegistryBuilder) Register(d schema.ToolDescriptor) error {
	if d.Name == "" {
		return fmt.Errorf("tool has no name")
	}
	if d.Handler == nil {
		return fmt.Errorf("tool %q has no handler", d.Name)
	}
	if _, exists := b.tools[d.Name]; exists {
		return &schema.DuplicateToolError{Name: d.Name}
	}
	b.tools[d.Name] = d
	b.order = append(b.order, d.Name)
	return nil
}

// WithTool adds a tool and returns the builder, enabling chaining.
// Registration errors are reported by Build.
func (b *RegistryBuilder) WithTool(d schema.ToolDescriptor) *RegistryBuilder {
	if err := b.Register(d); err != nil {
		b.errs = append(b.errs, err)
	}

	return b
}

// Build produces an immutable Registry from the accumulated tools.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	order := make([]string, len(b.order))
	copy(order, b.order)
	tools := make(map[string]schema.ToolDescriptor, len(b.tools))
	for k, v := range b.tools {
		tools[k] = v
	}
	return &Registry{order: order, tools: tools}, nil
}
