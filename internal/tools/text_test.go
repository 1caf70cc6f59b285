package tools

import (
	"context"
	"testing"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func call(t *testing.T, d schema.ToolDescriptor, args schema.Args) (string, bool) {
	t.Helper()
	res := d.Handler(context.Background(), args)
	return Normalize(res), res.IsError
}

func TestTextTools(t *testing.T) {
	tests := []struct {
		tool schema.ToolDescriptor
		args schema.Args
		want string
	}{
		{newHelloTool(Env{}), schema.Args{"name": "Ada"}, "Hello, Ada! 👋"},
		{newEchoTool(Env{}), schema.Args{"message": "ping"}, "ping"},
		{newReverseEchoTool(Env{}), schema.Args{"message": "abc"}, "cba"},
		{newReverseTool(Env{}), schema.Args{"input": "héllo"}, "olléh"},
		{newUpperCaseTool(Env{}), schema.Args{"input": "hello"}, "HELLO"},
		{newLowerCaseTool(Env{}), schema.Args{"input": "HeLLo"}, "hello"},
		{newLeetSpeakTool(Env{}), schema.Args{"input": "Leet Speak is Easy"}, "L33t 5p34k 15 345y"},
		{newUpperCaseTool(Env{}), schema.Args{"input": 42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.tool.Name, func(t *testing.T) {
			got, isErr := call(t, tt.tool, tt.args)
			if isErr {
				t.Fatalf("unexpected error result: %q", got)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHello_MissingName(t *testing.T) {
	if _, isErr := call(t, newHelloTool(Env{}), schema.Args{}); !isErr {
		t.Error("expected error result for missing name")
	}
}

func TestTimeTools(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	env := Env{Now: func() time.Time { return fixed }}

	if got, _ := call(t, newCurrentTimeTool(env), nil); got != "2024-03-01T10:00:00Z" {
		t.Errorf("current_time = %q", got)
	}

	tests := []struct {
		offset string
		want   string
		isErr  bool
	}{
		{"2h 30m", "2024-03-01T12:30:00Z", false},
		{"45m", "2024-03-01T10:45:00Z", false},
		{"1h", "2024-03-01T11:00:00Z", false},
		{"soon", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			got, isErr := call(t, newAddTimeTool(env), schema.Args{"offset": tt.offset})
			if isErr != tt.isErr {
				t.Fatalf("isErr = %v, want %v (%q)", isErr, tt.isErr, got)
			}
			if !tt.isErr && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPressButton(t *testing.T) {
	got, isErr := call(t, newPressButtonTool(Env{}), schema.Args{"color": " Red "})
	if isErr {
		t.Fatalf("unexpected error: %q", got)
	}
	want := buttonResponses["red"] + "\n\n*Button press registered successfully!*"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, isErr = call(t, newPressButtonTool(Env{}), schema.Args{"color": "magenta"})
	if !isErr {
		t.Errorf("expected error for unknown color, got %q", got)
	}
}
