package schema

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

// FunctionSchema is one tool rendered in the function-calling format model
// endpoints understand.
type FunctionSchema struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition names a function and describes its parameters.
type FunctionDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters"`
}

// Gateway is the interface every model backend must satisfy. Endpoints are
// stateless, so the full transcript is sent on every call.
type Gateway interface {
	// Converse returns the model's next message. Failures are
	// *GatewayUnavailableError or *GatewayProtocolError; no retries happen.
	Converse(ctx context.Context, transcript Transcript, functions []FunctionSchema) (Message, error)
	Model() string
}
