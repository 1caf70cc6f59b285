package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// OpenAIProvider makes direct HTTP calls to any OpenAI-compatible
// /chat/completions endpoint.
type OpenAIProvider struct {
	apiKey       string
	apiBase      string
	model        string
	temperature  *float64
	extraHeaders map[string]string
	httpClient   *http.Client
}

// NewOpenAIProvider constructs a provider from raw config values.
func NewOpenAIProvider(apiKey, apiBase, model string, temperature *float64, extraHeaders map[string]string, timeout time.Duration) *OpenAIProvider {
	if apiBase == "" {
		apiBase = FindByName("openai").DefaultAPIBase
	}
	return &OpenAIProvider{
		apiKey:       apiKey,
		apiBase:      strings.TrimRight(apiBase, "/"),
		model:        model,
		temperature:  temperature,
		extraHeaders: extraHeaders,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (p *OpenAIProvider) Model() string { return p.model }

type openAIMessage struct {
	Role       string         `json:"role"`
	Content    *string        `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	Name       string         `json:"name,omitempty"`
}

type openAIRequest struct {
	Model       string                  `json:"model"`
	Messages    []openAIMessage         `json:"messages"`
	Tools       []schema.FunctionSchema `json:"tools,omitempty"`
	ToolChoice  string                  `json:"tool_choice,omitempty"`
	Temperature *float64                `json:"temperature,omitempty"`
	Stream      bool                    `json:"stream"`
}

// openAIRespBody is the subset of the chat completion response we care about.
type openAIRespBody struct {
	Choices []struct {
		Message *struct {
			Content   *string        `json:"content"`
			ToolCalls []wireToolCall `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Converse implements schema.Gateway.
func (p *OpenAIProvider) Converse(ctx context.Context, transcript schema.Transcript, functions []schema.FunctionSchema) (schema.Message, error) {
	body := openAIRequest{
		Model:       p.model,
		Messages:    toOpenAIMessages(transcript),
		Temperature: p.temperature,
	}
	if len(functions) > 0 {
		body.Tools = functions
		body.ToolChoice = "auto"
	}

	headers := make(map[string]string, len(p.extraHeaders)+1)
	if p.apiKey != "" {
		headers["Authorization"] = "Bearer " + p.apiKey
	}
	for k, v := range p.extraHeaders {
		headers[k] = v
	}

	raw, err := postJSON(ctx, p.httpClient, p.apiBase+"/chat/completions", headers, body)
	if err != nil {
		return schema.Message{}, err
	}
	return parseOpenAIResponse(raw)
}

func parseOpenAIResponse(raw []byte) (schema.Message, error) {
	var body openAIRespBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return schema.Message{}, protocolError("parse OpenAI response: %w", err)
	}
	if len(body.Choices) == 0 || body.Choices[0].Message == nil {
		return schema.Message{}, protocolError("empty choices in response")
	}
	msg := body.Choices[0].Message

	var content string
	if msg.Content != nil {
		content = *msg.Content
	}
	return schema.NewAssistantMessage(content, toSchemaToolCalls(msg.ToolCalls)), nil
}

func toOpenAIMessages(t schema.Transcript) []openAIMessage {
	out := make([]openAIMessage, 0, len(t.Messages))
	for _, m := range t.Messages {
		content := m.Content
		om := openAIMessage{Role: string(m.Role), Content: &content}
		if m.Role == schema.RoleAssistant && len(m.ToolCalls) > 0 {
			if content == "" {
				om.Content = nil
			}
			for _, tc := range m.ToolCalls {
				args, _ := json.Marshal(nonNil(tc.Arguments))
				encoded, _ := json.Marshal(string(args))
				om.ToolCalls = append(om.ToolCalls, wireToolCall{
					ID:       tc.ID,
					Type:     "function",
					Function: wireFunctionCall{Name: tc.Name, Arguments: encoded},
				})
			}
		}
		if m.Role == schema.RoleTool {
			om.ToolCallID = m.ToolCallID
			om.Name = m.ToolName
		}
		out = append(out, om)
	}
	return out
}
