package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// ContextBuilder assembles the optional system prompt prepended to runs
// whose transcript carries none.
type ContextBuilder struct {
	instructions string
	workspace    string
	toolNames    []string
	now          func() time.Time
}

// NewContextBuilder returns nil when instructions is empty, which disables
// prompt injection.
func NewContextBuilder(instructions, workspace string, toolNames []string) *ContextBuilder {
	if strings.TrimSpace(instructions) == "" {
		return nil
	}
	return &ContextBuilder{
		instructions: instructions,
		workspace:    workspace,
		toolNames:    toolNames,
		now:          time.Now,
	}
}

// Apply prepends the system prompt unless t already starts with a system
// message.
func (cb *ContextBuilder) Apply(t *schema.Transcript) {
	if cb == nil {
		return
	}
	if first, ok := firstMessage(t); ok && first.Role == schema.RoleSystem {
		return
	}
	msgs := make([]schema.Message, 0, t.Len()+1)
	msgs = append(msgs, schema.NewSystemMessage(cb.BuildSystemPrompt()))
	t.Messages = append(msgs, t.Messages...)
}

// BuildSystemPrompt joins the configured instructions with the runtime
// section.
func (cb *ContextBuilder) BuildSystemPrompt() string {
	parts := []string{strings.TrimSpace(cb.instructions), cb.buildRuntime()}
	return strings.Join(parts, "\n\n---\n\n")
}

func (cb *ContextBuilder) buildRuntime() string {
	now := cb.now()
	tz, _ := now.Zone()
	if tz == "" {
		tz = "UTC"
	}
	osName := runtime.GOOS
	if osName == "darwin" {
		osName = "macOS"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Current Time\n%s (%s)\n\n", now.Format("2006-01-02 15:04 (Monday)"), tz)
	fmt.Fprintf(&sb, "## Runtime\n%s %s, Go %s", osName, runtime.GOARCH, runtime.Version())
	if cb.workspace != "" {
		fmt.Fprintf(&sb, "\n\n## Workspace\nRelative file paths resolve against: %s", expandHome(cb.workspace))
	}
	if len(cb.toolNames) > 0 {
		fmt.Fprintf(&sb, "\n\n## Tools\n%s", strings.Join(cb.toolNames, ", "))
	}
	return sb.String()
}

func firstMessage(t *schema.Transcript) (schema.Message, bool) {
	if t.Len() == 0 {
		return schema.Message{}, false
	}
	return t.Messages[0], true
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
