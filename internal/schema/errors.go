package schema

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrValidation         = errors.New("validation failed")
	ErrGatewayUnavailable = errors.New("model gateway unavailable")
	ErrGatewayProtocol    = errors.New("model gateway protocol error")
	ErrRoundLimit         = errors.New("round limit exceeded")
	ErrUnknownTool        = errors.New("unknown tool")
	ErrToolExecution      = errors.New("tool execution failed")
	ErrDuplicateTool      = errors.New("duplicate tool")
)

// ValidationError reports an empty or malformed inbound transcript.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string        { return "invalid transcript: " + e.Reason }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// GatewayUnavailableError reports that the model endpoint could not be
// reached, timed out or answered with a failure status.
type GatewayUnavailableError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *GatewayUnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("model gateway %s: HTTP %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("model gateway %s unavailable: %v", e.Endpoint, e.Err)
}
func (e *GatewayUnavailableError) Unwrap() error        { return e.Err }
func (e *GatewayUnavailableError) Is(target error) bool { return target == ErrGatewayUnavailable }

// GatewayProtocolError reports a response that cannot be parsed into an
// assistant message.
type GatewayProtocolError struct {
	Err error
}

func (e *GatewayProtocolError) Error() string {
	return "model gateway protocol error: " + e.Err.Error()
}
func (e *GatewayProtocolError) Unwrap() error        { return e.Err }
func (e *GatewayProtocolError) Is(target error) bool { return target == ErrGatewayProtocol }

// RoundLimitExceededError reports that the model never produced a final
// answer within Limit rounds.
type RoundLimitExceededError struct {
	Limit int
}

func (e *RoundLimitExceededError) Error() string {
	return fmt.Sprintf("no final answer after %d rounds", e.Limit)
}
func (e *RoundLimitExceededError) Is(target error) bool { return target == ErrRoundLimit }

// UnknownToolError is folded into the transcript, never returned to callers.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string        { return fmt.Sprintf("unknown tool %q", e.Name) }
func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

// ToolExecutionError is folded into the transcript, never returned to callers.
type ToolExecutionError struct {
	Name string
	Err  error
}

func (e *ToolExecutionError) Error() string        { return fmt.Sprintf("tool %q failed: %v", e.Name, e.Err) }
func (e *ToolExecutionError) Unwrap() error        { return e.Err }
func (e *ToolExecutionError) Is(target error) bool { return target == ErrToolExecution }

// DuplicateToolError is raised while building the registry.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string        { return fmt.Sprintf("tool %q registered twice", e.Name) }
func (e *DuplicateToolError) Is(target error) bool { return target == ErrDuplicateTool }
