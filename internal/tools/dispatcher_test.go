package tools

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func newTestDispatcher(t *testing.T, timeout time.Duration, tools ...schema.ToolDescriptor) *Dispatcher {
	t.Helper()
	b := NewRegistryBuilder()
	for _, d := range tools {
		b.WithTool(d)
	}
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return NewDispatcher(reg, timeout, 0)
}

func TestExecute_Success(t *testing.T) {
	d := newTestDispatcher(t, time.Second, newUpperCaseTool(Env{}))
	out := d.Execute(context.Background(), schema.ToolCall{ID: "c1", Name: "to_upper_case", Arguments: map[string]any{"input": "hello"}})
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Content != "HELLO" || out.CallID != "c1" {
		t.Errorf("unexpected outcome: %+v", out)
	}
}

func TestExecute_UnknownTool(t *testing.T) {
	d := newTestDispatcher(t, time.Second, stubTool("echo"))
	out := d.Execute(context.Background(), schema.ToolCall{ID: "c1", Name: "nope"})
	if !errors.Is(out.Err, schema.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", out.Err)
	}
	if !strings.Contains(out.Content, "unknown tool") || !strings.Contains(out.Content, "nope") {
		t.Errorf("content should name the unknown tool, got %q", out.Content)
	}
}

func TestExecute_NilArguments(t *testing.T) {
	d := newTestDispatcher(t, time.Second, stubTool("echo"))
	out := d.Execute(context.Background(), schema.ToolCall{ID: "c1", Name: "echo"})
	if out.Content != "echo:" {
		t.Errorf("expected handler to see empty args, got %q", out.Content)
	}
}

func TestExecute_ErrorResult(t *testing.T) {
	failing := schema.ToolDescriptor{
		Name: "fail",
		Handler: func(context.Context, schema.Args) schema.ToolResult {
			return schema.ErrorResult("Error: disk on fire")
		},
	}
	d := newTestDispatcher(t, time.Second, failing)
	out := d.Execute(context.Background(), schema.ToolCall{ID: "c1", Name: "fail"})
	if !errors.Is(out.Err, schema.ErrToolExecution) {
		t.Errorf("expected ErrToolExecution, got %v", out.Err)
	}
	if out.Content != "Error: disk on fire" {
		t.Errorf("unexpected content %q", out.Content)
	}
}

func TestExecute_Panic(t *testing.T) {
	panicky := schema.ToolDescriptor{
		Name: "boom",
		Handler: func(context.Context, schema.Args) schema.ToolResult {
			panic("kaboom")
		},
	}
	d := newTestDispatcher(t, time.Second, panicky)
	out := d.Execute(context.Background(), schema.ToolCall{ID: "c1", Name: "boom"})
	if out.Err == nil || !strings.Contains(out.Content, "kaboom") {
		t.Errorf("expected panic folded into outcome, got %+v", out)
	}
}

func TestExecute_Timeout(t *testing.T) {
	slow := schema.ToolDescriptor{
		Name: "slow",
		Handler: func(ctx context.Context, _ schema.Args) schema.ToolResult {
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			return schema.TextContent("too late")
		},
	}
	d := newTestDispatcher(t, 20*time.Millisecond, slow)
	out := d.Execute(context.Background(), schema.ToolCall{ID: "c1", Name: "slow"})
	if !errors.Is(out.Err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", out.Err)
	}
	if !strings.Contains(out.Content, "timed out") {
		t.Errorf("expected timeout message, got %q", out.Content)
	}
}

func TestExecuteAll_PreservesOrder(t *testing.T) {
	var running atomic.Int32
	delayed := func(name string, delay time.Duration) schema.ToolDescriptor {
		return schema.ToolDescriptor{
			Name: name,
			Handler: func(context.Context, schema.Args) schema.ToolResult {
				running.Add(1)
				time.Sleep(delay)
				return schema.TextContent(name)
			},
		}
	}
	d := newTestDispatcher(t, time.Second, delayed("slow", 40*time.Millisecond), delayed("fast", 0))

	calls := []schema.ToolCall{
		{ID: "1", Name: "slow"},
		{ID: "2", Name: "fast"},
		{ID: "3", Name: "missing"},
	}
	outs := d.ExecuteAll(context.Background(), calls)
	if len(outs) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outs))
	}
	for i, c := range calls {
		if outs[i].CallID != c.ID {
			t.Errorf("outcome %d has call id %q, want %q", i, outs[i].CallID, c.ID)
		}
	}
	if outs[0].Content != "slow" || outs[1].Content != "fast" {
		t.Errorf("unexpected contents: %q, %q", outs[0].Content, outs[1].Content)
	}
	if running.Load() != 2 {
		t.Errorf("expected 2 handler runs, got %d", running.Load())
	}
}
