// Package mcp exposes the tool registry as a Model Context Protocol server
// over streamable HTTP.
package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crystaldolphin/toolbridge/internal/schema"
	"github.com/crystaldolphin/toolbridge/internal/tools"
)

const implementationName = "toolbridge"

// NewServer registers every registry tool on a fresh MCP server. Calls are
// routed through the dispatcher so timeouts and panic recovery match the
// chat loop.
func NewServer(registry *tools.Registry, dispatcher *tools.Dispatcher, version string) *mcpsdk.Server {
	s := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    implementationName,
		Version: version,
	}, nil)

	for _, d := range registry.All() {
		addTool(s, d, dispatcher)
	}
	return s
}

// NewHandler serves s statelessly; every request stands alone.
func NewHandler(s *mcpsdk.Server) http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return s
	}, &mcpsdk.StreamableHTTPOptions{
		Stateless: true,
	})
}

func addTool(s *mcpsdk.Server, d schema.ToolDescriptor, dispatcher *tools.Dispatcher) {
	t := &mcpsdk.Tool{
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,

		InputSchema: tools.ParametersSchema(d.Params),
	}

	s.AddTool(t, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		args := make(map[string]any)

		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorResult("invalid arguments: " + err.Error()), nil
			}
		}

		out := dispatcher.Execute(ctx, schema.ToolCall{
			ID:        "mcp_" + uuid.NewString(),
			Name:      d.Name,
			Arguments: args,
		})
		if out.Err != nil {
			return errorResult(out.Content), nil
		}

		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: out.Content}},
		}, nil
	})
}

func errorResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: true,
	}
}
