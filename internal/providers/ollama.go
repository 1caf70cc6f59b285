package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// OllamaProvider talks to Ollama's native /api/chat endpoint with streaming
// disabled.
type OllamaProvider struct {
	apiBase     string
	model       string
	temperature *float64
	httpClient  *http.Client
}

// NewOllamaProvider constructs a provider. An empty apiBase falls back to the
// local default.
func NewOllamaProvider(apiBase, model string, temperature *float64, timeout time.Duration) *OllamaProvider {
	if apiBase == "" {
		apiBase = FindByName("ollama").DefaultAPIBase
	}
	return &OllamaProvider{
		apiBase:     strings.TrimRight(apiBase, "/"),
		model:       model,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (p *OllamaProvider) Model() string { return p.model }

type ollamaMessage struct {
	Role       string       `json:"role"`
	Content    string       `json:"content"`
	ToolCalls  []ollamaCall `json:"tool_calls,omitempty"`
	ToolName   string       `json:"tool_name,omitempty"`
	ToolCallID string       `json:"tool_call_id,omitempty"`
}

type ollamaCall struct {
	Function struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	} `json:"function"`
}

type ollamaRequest struct {
	Model    string                  `json:"model"`
	Messages []ollamaMessage         `json:"messages"`
	Tools    []schema.FunctionSchema `json:"tools,omitempty"`
	Stream   bool                    `json:"stream"`
	Options  map[string]any          `json:"options,omitempty"`
}

type ollamaResponse struct {
	Model   string `json:"model"`
	Message *struct {
		Role      string         `json:"role"`
		Content   string         `json:"content"`
		ToolCalls []wireToolCall `json:"tool_calls"`
	} `json:"message"`
	Done  bool   `json:"done"`
	Error string `json:"error"`
}

// Converse implements schema.Gateway.
func (p *OllamaProvider) Converse(ctx context.Context, transcript schema.Transcript, functions []schema.FunctionSchema) (schema.Message, error) {
	body := ollamaRequest{
		Model:    p.model,
		Messages: toOllamaMessages(transcript),
		Tools:    functions,
		Stream:   false,
	}
	if p.temperature != nil {
		body.Options = map[string]any{"temperature": *p.temperature}
	}

	raw, err := postJSON(ctx, p.httpClient, p.apiBase+"/api/chat", nil, body)
	if err != nil {
		return schema.Message{}, err
	}

	var resp ollamaResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return schema.Message{}, protocolError("parse Ollama response: %w", err)
	}
	if resp.Error != "" {
		return schema.Message{}, protocolError("ollama: %s", resp.Error)
	}
	if resp.Message == nil {
		return schema.Message{}, protocolError("ollama response has no message")
	}
	return schema.NewAssistantMessage(resp.Message.Content, toSchemaToolCalls(resp.Message.ToolCalls)), nil
}

func toOllamaMessages(t schema.Transcript) []ollamaMessage {
	out := make([]ollamaMessage, 0, len(t.Messages))
	for _, m := range t.Messages {
		om := ollamaMessage{Role: string(m.Role), Content: m.Content}
		for _, tc := range m.ToolCalls {
			var c ollamaCall
			c.Function.Name = tc.Name
			c.Function.Arguments = nonNil(tc.Arguments)
			om.ToolCalls = append(om.ToolCalls, c)
		}
		if m.Role == schema.RoleTool {
			om.ToolName = m.ToolName
			om.ToolCallID = m.ToolCallID
		}
		out = append(out, om)
	}
	return out
}
