package tools

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("result is not JSON: %v\n%s", err, s)
	}
	return m
}

func TestWriteThenReadFile(t *testing.T) {
	dir := t.TempDir()
	env := Env{Workspace: dir}

	out, isErr := call(t, newWriteFileTool(env), schema.Args{"filePath": "notes/a.txt", "content": "hello"})
	if isErr {
		t.Fatalf("write failed: %s", out)
	}
	w := decodeJSON(t, out)
	if w["success"] != true || w["size"] != float64(5) {
		t.Errorf("unexpected write result: %v", w)
	}
	if data, err := os.ReadFile(filepath.Join(dir, "notes", "a.txt")); err != nil || string(data) != "hello" {
		t.Fatalf("file not written: %v %q", err, data)
	}

	out, isErr = call(t, newReadFileTool(env), schema.Args{"filePath": "notes/a.txt"})
	if isErr {
		t.Fatalf("read failed: %s", out)
	}
	r := decodeJSON(t, out)
	if r["content"] != "hello" || r["success"] != true {
		t.Errorf("unexpected read result: %v", r)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	out, isErr := call(t, newReadFileTool(Env{Workspace: t.TempDir()}), schema.Args{"filePath": "missing.txt"})
	if !isErr {
		t.Fatal("expected error result")
	}
	if decodeJSON(t, out)["error"] != "File not found" {
		t.Errorf("unexpected result: %s", out)
	}
}

func TestFileTools_RestrictedDir(t *testing.T) {
	dir := t.TempDir()
	env := Env{Workspace: dir, AllowedDir: dir}

	out, isErr := call(t, newReadFileTool(env), schema.Args{"filePath": "../escape.txt"})
	if !isErr || !strings.Contains(out, "outside allowed directory") {
		t.Errorf("expected restriction error, got %s", out)
	}
	out, isErr = call(t, newWriteFileTool(env), schema.Args{"filePath": "/etc/toolbridge.txt", "content": "x"})
	if !isErr || !strings.Contains(out, "outside allowed directory") {
		t.Errorf("expected restriction error, got %s", out)
	}

	outside := t.TempDir()
	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}
	out, isErr = call(t, newWriteFileTool(env), schema.Args{"filePath": "link/evil.txt", "content": "x"})
	if !isErr || !strings.Contains(out, "outside allowed directory") {
		t.Errorf("expected restriction error through symlinked dir, got %s", out)
	}
	if _, err := os.Stat(filepath.Join(outside, "evil.txt")); !os.IsNotExist(err) {
		t.Errorf("file written outside allowed directory: %v", err)
	}
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "a"), 0o755); err != nil {
		t.Fatal(err)
	}

	out, isErr := call(t, newListDirectoryTool(Env{}), schema.Args{"directoryPath": dir})
	if isErr {
		t.Fatalf("list failed: %s", out)
	}
	items, _ := decodeJSON(t, out)["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", items)
	}
	first := items[0].(map[string]any)
	second := items[1].(map[string]any)
	if first["name"] != "a" || first["type"] != "directory" {
		t.Errorf("unexpected first item: %v", first)
	}
	if second["name"] != "b.txt" || second["type"] != "file" || second["size"] != float64(3) {
		t.Errorf("unexpected second item: %v", second)
	}
}
