package agent

import (
	"fmt"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// Validate rejects transcripts the model cannot continue: empty ones, ones
// without a user message, unknown roles and tool messages that do not answer
// a call of the preceding assistant message. Every tool call must be answered
// before the next non-tool message and before the transcript ends.
func Validate(t schema.Transcript) error {
	if t.Len() == 0 {
		return &schema.ValidationError{Reason: "no messages"}
	}

	hasUser := false
	var pending map[string]bool // call ids of the last assistant message
	var calls []schema.ToolCall
	for i, m := range t.Messages {
		if !m.Role.Valid() {
			return &schema.ValidationError{Reason: fmt.Sprintf("message %d has unknown role %q", i, m.Role)}
		}
		if m.Role != schema.RoleTool {
			if err := unanswered(calls, pending); err != nil {
				return err
			}
		}
		switch m.Role {
		case schema.RoleUser:
			hasUser = true
			pending = nil
		case schema.RoleSystem:
			pending = nil
		case schema.RoleAssistant:
			pending = nil
			calls = m.ToolCalls
			if m.HasToolCalls() {
				pending = make(map[string]bool, len(m.ToolCalls))
				for _, tc := range m.ToolCalls {
					if tc.ID == "" || tc.Name == "" {
						return &schema.ValidationError{Reason: fmt.Sprintf("message %d has a tool call without id or name", i)}
					}
					pending[tc.ID] = true
				}
			}
		case schema.RoleTool:
			if pending == nil {
				return &schema.ValidationError{Reason: fmt.Sprintf("tool message %d does not follow an assistant tool call", i)}
			}
			if !pending[m.ToolCallID] {
				return &schema.ValidationError{Reason: fmt.Sprintf("tool message %d answers unknown call %q", i, m.ToolCallID)}
			}
			delete(pending, m.ToolCallID)
		}
	}
	if err := unanswered(calls, pending); err != nil {
		return err
	}
	if !hasUser {
		return &schema.ValidationError{Reason: "at least one user message is required"}
	}
	return nil
}

// unanswered reports the first call, in request order, still in pending.
func unanswered(calls []schema.ToolCall, pending map[string]bool) error {
	for _, tc := range calls {
		if pending[tc.ID] {
			return &schema.ValidationError{Reason: fmt.Sprintf("tool call %q has no result", tc.ID)}
		}
	}
	return nil
}
