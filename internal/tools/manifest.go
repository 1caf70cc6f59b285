package tools

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// Manifest selects and overrides catalog tools. When no manifest is given,
// every catalog entry is registered.
type Manifest struct {
	Tools []ManifestEntry `yaml:"tools"`
}

// ManifestEntry names one catalog tool. Description replaces the built-in
// text when set; Disabled skips the tool.
type ManifestEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`
}

// LoadManifest reads a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tool manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse tool manifest %s: %w", path, err)
	}
	return &m, nil
}

// Discover builds a Registry from the catalog, filtered by the manifest when
// one is given. Malformed entries and broken descriptors are skipped with a
// warning. Duplicate names fail the whole build.
func Discover(cat Catalog, m *Manifest, env Env) (*Registry, error) {
	b := NewRegistryBuilder()

	if m == nil {
		for _, e := range cat {
			addDiscovered(b, e.New(env), "")
		}
		return b.Build()
	}

	for i, me := range m.Tools {
		if me.Name == "" {
			slog.Warn("Skipping tool manifest entry without a name", "index", i)
			continue
		}
		if me.Disabled {
			slog.Debug("Tool disabled by manifest", "name", me.Name)
			continue
		}
		e, ok := cat.Find(me.Name)
		if !ok {
			slog.Warn("Skipping unknown tool in manifest", "name", me.Name)
			continue
		}
		addDiscovered(b, e.New(env), me.Description)
	}
	return b.Build()
}

func addDiscovered(b *RegistryBuilder, d schema.ToolDescriptor, description string) {
	if d.Name == "" || d.Handler == nil {
		slog.Warn("Skipping malformed tool descriptor", "name", d.Name)
		return
	}
	if description != "" {
		d.Description = description
	}
	b.WithTool(d)
}

// DefaultManifest lists every catalog tool, enabled, in catalog order.
func DefaultManifest(cat Catalog) *Manifest {
	m := &Manifest{Tools: make([]ManifestEntry, 0, len(cat))}
	for _, e := range cat {
		m.Tools = append(m.Tools, ManifestEntry{Name: string(e.Name)})
	}
	return m
}

// SaveManifest writes m to path as YAML, creating parent directories.
func SaveManifest(path string, m *Manifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode tool manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
