package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func stubTool(name string) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        name,
		Description: "stub " + name,
		Params:      []schema.Param{schema.StringParam{Name: "input", Description: "in"}},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			return schema.TextContent(name + ":" + stringArg(args, "input"))
		},
	}
}

// ─── RegistryBuilder ───────────────────────────────────────────────────────

func TestBuild_KeepsRegistrationOrder(t *testing.T) {
	reg, err := NewRegistryBuilder().
		WithTool(stubTool("zeta")).
		WithTool(stubTool("alpha")).
		WithTool(stubTool("mid")).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if reg.Len() != 3 {
		t.Errorf("expected Len()=3, got %d", reg.Len())
	}
}

func TestBuild_DuplicateNameFails(t *testing.T) {
	_, err := NewRegistryBuilder().
		WithTool(stubTool("echo")).
		WithTool(stubTool("echo")).
		Build()
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if !errors.Is(err, schema.ErrDuplicateTool) {
		t.Errorf("expected ErrDuplicateTool, got %v", err)
	}
	var dup *schema.DuplicateToolError
	if !errors.As(err, &dup) || dup.Name != "echo" {
		t.Errorf("expected DuplicateToolError for echo, got %v", err)
	}
}

func TestRegister_RejectsMalformed(t *testing.T) {
	b := NewRegistryBuilder()
	if err := b.Register(schema.ToolDescriptor{Handler: stubTool("x").Handler}); err == nil {
		t.Error("expected error for nameless tool")
	}
	if err := b.Register(schema.ToolDescriptor{Name: "nohandler"}); err == nil {
		t.Error("expected error for tool without handler")
	}
}

func TestLookup(t *testing.T) {
	reg, err := NewRegistryBuilder().WithTool(stubTool("echo")).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reg.Lookup("echo"); !ok {
		t.Error("expected echo to be found")
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("expected missing tool lookup to fail")
	}
}

// ─── Catalog ───────────────────────────────────────────────────────────────

func TestDefaultCatalog_BuildsUniqueRegistry(t *testing.T) {
	reg, err := Discover(DefaultCatalog(), nil, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != len(DefaultCatalog()) {
		t.Errorf("expected %d tools, got %d", len(DefaultCatalog()), reg.Len())
	}
	for _, d := range reg.All() {
		if d.Description == "" {
			t.Errorf("tool %q has no description", d.Name)
		}
	}
}
