package tools

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestDiscover_ManifestFilters(t *testing.T) {
	path := writeManifest(t, `
tools:
  - name: to_upper_case
    description: Shout the input.
  - name: echo
    disabled: true
  - name: no_such_tool
  - description: entry without a name
  - name: hello
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	reg, err := Discover(DefaultCatalog(), m, Env{})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	names := reg.Names()
	if len(names) != 2 || names[0] != "to_upper_case" || names[1] != "hello" {
		t.Fatalf("unexpected tools: %v", names)
	}
	d, _ := reg.Lookup("to_upper_case")
	if d.Description != "Shout the input." {
		t.Errorf("description override not applied: %q", d.Description)
	}
}

func TestDiscover_ManifestDuplicateFails(t *testing.T) {
	path := writeManifest(t, "tools:\n  - name: echo\n  - name: echo\n")
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if _, err := Discover(DefaultCatalog(), m, Env{}); err == nil {
		t.Fatal("expected duplicate entries to fail discovery")
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing manifest")
	}
	path := writeManifest(t, "tools: [unterminated")
	if _, err := LoadManifest(path); err == nil {
		t.Error("expected error for malformed manifest")
	}
}

func TestSaveManifest_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tools.yaml")
	cat := DefaultCatalog()

	if err := SaveManifest(path, DefaultManifest(cat)); err != nil {
		t.Fatalf("SaveManifest: %v", err)
	}
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	reg, err := Discover(cat, m, Env{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if reg.Len() != len(cat) {
		t.Fatalf("got %d tools, want %d", reg.Len(), len(cat))
	}
}
