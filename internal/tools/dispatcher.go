package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/crystaldolphin/toolbridge/internal/schema"
	"github.com/crystaldolphin/toolbridge/internal/shared/llmutils"
)

// DefaultToolTimeout bounds a single handler invocation when none is configured.
const DefaultToolTimeout = 30 * time.Second

// Outcome is the normalised result of one tool call. Err is informational:
// unknown tools, handler failures and timeouts are already folded into
// Content so the model can read them.
type Outcome struct {
	CallID   string
	Name     string
	Content  string
	Err      error
	Duration time.Duration
}

// Dispatcher executes model-requested tool calls against a Registry.
type Dispatcher struct {
	registry    *Registry
	timeout     time.Duration
	maxParallel int
}

// NewDispatcher creates a Dispatcher. timeout bounds each handler call;
// maxParallel caps concurrent calls within one round (0 = unlimited).
func NewDispatcher(registry *Registry, timeout time.Duration, maxParallel int) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultToolTimeout
	}
	return &Dispatcher{registry: registry, timeout: timeout, maxParallel: maxParallel}
}

// Execute runs one tool call. It never returns a Go error: every failure
// becomes an error-shaped Outcome.
func (d *Dispatcher) Execute(ctx context.Context, call schema.ToolCall) Outcome {
	start := time.Now()
	out := Outcome{CallID: call.ID, Name: call.Name}

	argsJSON, _ := json.Marshal(call.Arguments)
	slog.Info("Tool call", "name", call.Name, "id", call.ID, "args", llmutils.Truncate(string(argsJSON), 200))

	desc, ok := d.registry.Lookup(call.Name)
	if !ok {
		out.Err = &schema.UnknownToolError{Name: call.Name}
		out.Content = "Error: " + out.Err.Error()
		slog.Warn("Unknown tool requested", "name", call.Name)
		return out
	}

	args := schema.Args(call.Arguments)
	if args == nil {
		args = schema.Args{}
	}

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	done := make(chan schema.ToolResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- schema.ErrorResult("Error: tool %q panicked: %v", call.Name, r)
			}
		}()
		done <- desc.Handler(callCtx, args)
	}()

	select {
	case res := <-done:
		out.Content = Normalize(res)
		if res.IsError {
			out.Err = &schema.ToolExecutionError{Name: call.Name, Err: errors.New(llmutils.Truncate(out.Content, 200))}
		}
	case <-callCtx.Done():
		if ctx.Err() != nil {
			out.Err = &schema.ToolExecutionError{Name: call.Name, Err: ctx.Err()}
			out.Content = fmt.Sprintf("Error: tool %q was cancelled", call.Name)
		} else {
			out.Err = &schema.ToolExecutionError{Name: call.Name, Err: context.DeadlineExceeded}
			out.Content = fmt.Sprintf("Error: tool %q timed out after %s", call.Name, d.timeout)
		}
	}

	out.Duration = time.Since(start)
	if out.Err != nil {
		slog.Warn("Tool call failed", "name", call.Name, "err", out.Err, "duration", out.Duration)
	}
	return out
}

// ExecuteAll runs calls concurrently and returns their outcomes in the order
// the calls were given, regardless of completion order.
func (d *Dispatcher) ExecuteAll(ctx context.Context, calls []schema.ToolCall) []Outcome {
	outcomes := make([]Outcome, len(calls))

	var g errgroup.Group
	if d.maxParallel > 0 {
		g.SetLimit(d.maxParallel)
	}
	for i, call := range calls {
		g.Go(func() error {
			outcomes[i] = d.Execute(ctx, call)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
