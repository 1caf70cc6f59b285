package schema

// Transcript is the ordered, append-only list of messages exchanged with the
// model during one orchestration run. It owns typed append methods so callers
// never construct raw maps.
type Transcript struct {
	Messages []Message
}

// NewTranscript returns a Transcript initialised with a copy of msgs.
// Called with no arguments it returns an empty Transcript ready for use.
func NewTranscript(msgs ...Message) Transcript {
	if len(msgs) == 0 {
		return Transcript{Messages: make([]Message, 0)}
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return Transcript{Messages: out}
}

// AddSystem appends a system message.
func (t *Transcript) AddSystem(content string) {
	t.Messages = append(t.Messages, NewSystemMessage(content))
}

// AddUser appends a user message.
func (t *Transcript) AddUser(content string) {
	t.Messages = append(t.Messages, NewUserMessage(content))
}

// AddAssistant appends an assistant message returned by the model.
func (t *Transcript) AddAssistant(msg Message) {
	msg.Role = RoleAssistant
	t.Messages = append(t.Messages, msg)
}

// AddToolResult appends a tool-result message.
func (t *Transcript) AddToolResult(toolCallID, toolName, result string) {
	t.Messages = append(t.Messages, NewToolResultMessage(toolCallID, toolName, result))
}

// Len returns the number of messages.
func (t *Transcript) Len() int { return len(t.Messages) }

// Last returns the newest message, if any.
func (t *Transcript) Last() (Message, bool) {
	if len(t.Messages) == 0 {
		return Message{}, false
	}
	return t.Messages[len(t.Messages)-1], true
}

// Clone returns a deep copy of t with independent backing slices, so a run
// can append without touching memory owned by the caller.
func (t *Transcript) Clone() Transcript {
	cloned := make([]Message, len(t.Messages))
	for i, m := range t.Messages {
		if len(m.ToolCalls) > 0 {
			calls := make([]ToolCall, len(m.ToolCalls))
			copy(calls, m.ToolCalls)
			m.ToolCalls = calls
		}
		cloned[i] = m
	}
	return Transcript{Messages: cloned}
}
