package dependency

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crystaldolphin/toolbridge/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Tools.Workspace = t.TempDir()
	return &cfg
}

func TestNew_DefaultConfig(t *testing.T) {
	c, err := New(testConfig(t), "test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Registry().Len() != len(c.Registry().Names()) || c.Registry().Len() == 0 {
		t.Fatalf("registry not populated: %d tools", c.Registry().Len())
	}
	if c.Gateway().Model() != "llama3.2:3b" {
		t.Fatalf("model = %q", c.Gateway().Model())
	}
	if c.Orchestrator() == nil || c.Server() == nil || c.Dispatcher() == nil {
		t.Fatal("expected all services to be wired")
	}
	if got := c.Orchestrator().Settings().MaxRounds; got != 10 {
		t.Fatalf("MaxRounds = %d, want 10", got)
	}
}

func TestNew_ManifestSelectsTools(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "tools.yaml")
	manifest := "tools:\n  - name: echo\n  - name: hello\n    disabled: true\n  - name: to_upper_case\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Tools.Manifest = path

	c, err := New(cfg, "test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	names := c.Registry().Names()
	if len(names) != 2 || names[0] != "echo" || names[1] != "to_upper_case" {
		t.Fatalf("names = %v", names)
	}
}

func TestNew_UnknownProviderFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Provider.Name = "nope"

	if _, err := New(cfg, "test"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNew_MissingManifestFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tools.Manifest = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := New(cfg, "test"); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
