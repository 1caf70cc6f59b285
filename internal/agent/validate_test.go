package agent

import (
	"testing"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func TestValidate(t *testing.T) {
	call := schema.ToolCall{ID: "c1", Name: "echo"}
	tests := []struct {
		name    string
		msgs    []schema.Message
		wantErr bool
	}{
		{"empty", nil, true},
		{"single user", []schema.Message{schema.NewUserMessage("hi")}, false},
		{"system only", []schema.Message{schema.NewSystemMessage("s")}, true},
		{"unknown role", []schema.Message{schema.NewUserMessage("hi"), {Role: "robot", Content: "x"}}, true},
		{"history ending in assistant", []schema.Message{
			schema.NewUserMessage("hi"), schema.NewAssistantMessage("hello", nil),
		}, false},
		{"answered tool call", []schema.Message{
			schema.NewUserMessage("hi"),
			schema.NewAssistantMessage("", []schema.ToolCall{call}),
			schema.NewToolResultMessage("c1", "echo", "x"),
			schema.NewUserMessage("thanks"),
		}, false},
		{"orphan tool message", []schema.Message{
			schema.NewUserMessage("hi"),
			schema.NewToolResultMessage("c1", "echo", "x"),
		}, true},
		{"mismatched call id", []schema.Message{
			schema.NewUserMessage("hi"),
			schema.NewAssistantMessage("", []schema.ToolCall{call}),
			schema.NewToolResultMessage("c2", "echo", "x"),
		}, true},
		{"unanswered trailing tool call", []schema.Message{
			schema.NewUserMessage("hi"),
			schema.NewAssistantMessage("", []schema.ToolCall{call}),
		}, true},
		{"partially answered then user", []schema.Message{
			schema.NewUserMessage("hi"),
			schema.NewAssistantMessage("", []schema.ToolCall{call, {ID: "c2", Name: "echo"}}),
			schema.NewToolResultMessage("c1", "echo", "x"),
			schema.NewUserMessage("again"),
		}, true},
		{"all calls answered", []schema.Message{
			schema.NewUserMessage("hi"),
			schema.NewAssistantMessage("", []schema.ToolCall{call, {ID: "c2", Name: "echo"}}),
			schema.NewToolResultMessage("c2", "echo", "y"),
			schema.NewToolResultMessage("c1", "echo", "x"),
		}, false},
		{"tool call without id", []schema.Message{
			schema.NewUserMessage("hi"),
			schema.NewAssistantMessage("", []schema.ToolCall{{Name: "echo"}}),
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(schema.NewTranscript(tt.msgs...))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFinalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"<think>x</think>answer", "answer"},
		{"a <think>\nmulti\nline\n</think> b", "a  b"},
		{"<think>only</think>", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Finalize(tt.in); got != tt.want {
			t.Errorf("Finalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
