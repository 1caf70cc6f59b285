package server

import (
	"encoding/json"
	"fmt"

	"github.com/crystaldolphin/toolbridge/internal/providers"
	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// chatRequest is the body of POST /api/chat and of every WebSocket frame.
type chatRequest struct {
	Messages []wireMessage `json:"messages"`
}

// chatReply carries either the final answer or an error. Code is a stable
// machine-readable tag for clients.
type chatReply struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	Name       string         `json:"name,omitempty"`
}

type wireToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type,omitempty"`
	Function wireFunction `json:"function"`
}

type wireFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// toTranscript converts client messages. Structural checks happen later in
// the orchestrator; only undecodable arguments are rejected here.
func toTranscript(msgs []wireMessage) (schema.Transcript, error) {
	out := make([]schema.Message, 0, len(msgs))
	for i, m := range msgs {
		msg := schema.Message{
			Role:       schema.Role(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			ToolName:   m.Name,
		}
		for _, tc := range m.ToolCalls {
			args, err := providers.ParseArguments(tc.Function.Arguments)
			if err != nil {
				return schema.Transcript{}, &schema.ValidationError{
					Reason: fmt.Sprintf("message %d: arguments of %q: %v", i, tc.Function.Name, err),
				}
			}
			msg.ToolCalls = append(msg.ToolCalls, schema.ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: args,
			})
		}
		out = append(out, msg)
	}
	return schema.NewTranscript(out...), nil
}
