package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func newHelloTool(Env) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(ToolHello),
		Title:       "Hello",
		Description: "Greet someone by name.",
		Params: []schema.Param{
			schema.StringParam{Name: "name", Description: "Name of the person to greet"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			name, ok := requiredString(args, "name")
			if !ok {
				return schema.ErrorResult("Error: name is required")
			}
			return schema.TextContent(fmt.Sprintf("Hello, %s! 👋", name))
		},
	}
}

func newEchoTool(Env) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(ToolEcho),
		Title:       "Echo",
		Description: "Echo a message back unchanged.",
		Params: []schema.Param{
			schema.StringParam{Name: "message", Description: "Message to echo"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			return schema.TextContent(stringArg(args, "message"))
		},
	}
}

func newReverseEchoTool(Env) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(ToolReverseEcho),
		Title:       "Reverse echo",
		Description: "Echo a message back with its characters reversed.",
		Params: []schema.Param{
			schema.StringParam{Name: "message", Description: "Message to reverse"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			return schema.TextContent(reverseString(stringArg(args, "message")))
		},
	}
}

func newReverseTool(Env) schema.ToolDescriptor {
	return stringTransform(ToolReverse, "Reverse", "Reverse the characters of a string.", reverseString)
}

func newUpperCaseTool(Env) schema.ToolDescriptor {
	return stringTransform(ToolUpperCase, "Upper case", "Convert a string to upper case.", strings.ToUpper)
}

func newLowerCaseTool(Env) schema.ToolDescriptor {
	return stringTransform(ToolLowerCase, "Lower case", "Convert a string to lower case.", strings.ToLower)
}

func newLeetSpeakTool(Env) schema.ToolDescriptor {
	return stringTransform(ToolLeetSpeak, "Leet speak", "Convert a string to leet speak.", leet.Replace)
}

var leet = strings.NewReplacer(
	"a", "4", "A", "4",
	"e", "3", "E", "3",
	"i", "1", "I", "1",
	"o", "0", "O", "0",
	"s", "5", "S", "5",
)

// stringTransform builds a single-argument tool over "input".
func stringTransform(name ToolName, title, description string, fn func(string) string) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(name),
		Title:       title,
		Description: description,
		Params: []schema.Param{
			schema.StringParam{Name: "input", Description: "The text to transform"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			return schema.TextContent(fn(stringArg(args, "input")))
		},
	}
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
