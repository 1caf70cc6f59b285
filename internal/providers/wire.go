package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

const maxResponseBytes = 16 << 20

// wireFunctionCall is the function part of a tool call on the wire. Ollama
// sends arguments as an object; OpenAI-compatible servers send a JSON string.
type wireFunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type wireToolCall struct {
	ID       string           `json:"id,omitempty"`
	Type     string           `json:"type,omitempty"`
	Function wireFunctionCall `json:"function"`
}

// toSchemaToolCalls converts wire calls, assigning ids where the server
// omitted them so tool messages can still be matched.
func toSchemaToolCalls(calls []wireToolCall) []schema.ToolCall {
	if len(calls) == 0 {
		return nil
	}
	out := make([]schema.ToolCall, 0, len(calls))
	for _, tc := range calls {
		args, err := ParseArguments(tc.Function.Arguments)
		if err != nil {
			slog.Warn("failed to parse tool arguments", "tool", tc.Function.Name, "err", err)
			args = map[string]any{}
		}
		id := tc.ID
		if id == "" {
			id = "call_" + uuid.NewString()
		}
		out = append(out, schema.ToolCall{ID: id, Name: tc.Function.Name, Arguments: args})
	}
	return out
}

// ParseArguments accepts an argument object, a JSON-encoded string holding
// one, or nothing.
func ParseArguments(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return map[string]any{}, err
		}
		return repairJSON(s)
	}
	return repairJSON(string(trimmed))
}

// repairJSON attempts to unmarshal JSON, retrying after stripping trailing
// garbage characters. Some small models emit truncated tool arguments.
func repairJSON(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}, nil
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return nonNil(out), nil
	}

	// Attempt 1: trim trailing non-JSON characters.
	stripped := strings.TrimRight(raw, " \t\n\r}]")
	if !strings.HasSuffix(stripped, "}") {
		stripped += "}"
	}
	if err := json.Unmarshal([]byte(stripped), &out); err == nil {
		return nonNil(out), nil
	}

	// Attempt 2: find the last complete JSON object.
	if i := strings.LastIndex(raw, "}"); i >= 0 {
		if err := json.Unmarshal([]byte(raw[:i+1]), &out); err == nil {
			return nonNil(out), nil
		}
	}

	return map[string]any{}, fmt.Errorf("cannot repair JSON: %s", raw)
}

func nonNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// postJSON sends body to url and returns the raw response. Transport
// failures, timeouts and non-2xx statuses become GatewayUnavailableError.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, &schema.GatewayUnavailableError{Endpoint: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &schema.GatewayUnavailableError{Endpoint: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &schema.GatewayUnavailableError{Endpoint: url, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &schema.GatewayUnavailableError{
			Endpoint: url,
			Status:   resp.StatusCode,
			Err:      errors.New(friendlyHTTPError(resp.StatusCode, raw)),
		}
	}
	return raw, nil
}

func friendlyHTTPError(code int, body []byte) string {
	if code == http.StatusTooManyRequests {
		return "rate limit exceeded"
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 300 {
		s = s[:300]
	}
	if s == "" {
		s = http.StatusText(code)
	}
	return s
}

func protocolError(format string, args ...any) error {
	return &schema.GatewayProtocolError{Err: fmt.Errorf(format, args...)}
}
