package schema

import "context"

// Param is one argument of a tool. The set of implementations is closed:
// StringParam, NumberParam and BoolParam. Parameters are required unless
// Optional is set.
type Param interface {
	ParamName() string
	ParamDescription() string
	IsOptional() bool

	sealed()
}

// StringParam is a text argument.
type StringParam struct {
	Name        string
	Description string
	Optional    bool
}

func (p StringParam) ParamName() string        { return p.Name }
func (p StringParam) ParamDescription() string { return p.Description }
func (p StringParam) IsOptional() bool         { return p.Optional }
func (StringParam) sealed()                    {}

// NumberParam is a numeric argument. Models may send it as a JSON number or a
// numeric string; handlers coerce.
type NumberParam struct {
	Name        string
	Description string
	Optional    bool
}

func (p NumberParam) ParamName() string        { return p.Name }
func (p NumberParam) ParamDescription() string { return p.Description }
func (p NumberParam) IsOptional() bool         { return p.Optional }
func (NumberParam) sealed()                    {}

// BoolParam is a boolean argument.
type BoolParam struct {
	Name        string
	Description string
	Optional    bool
}

func (p BoolParam) ParamName() string        { return p.Name }
func (p BoolParam) ParamDescription() string { return p.Description }
func (p BoolParam) IsOptional() bool         { return p.Optional }
func (BoolParam) sealed()                    {}

// Args carries the model-supplied arguments for one tool call. Values arrive
// exactly as decoded from the model response and are not re-validated.
type Args map[string]any

// ToolHandler executes a tool. It must convert every failure into an
// error-shaped ToolResult instead of panicking.
type ToolHandler func(ctx context.Context, args Args) ToolResult

// ToolDescriptor is a single tool's identity, metadata, argument schema and
// executable handler.
type ToolDescriptor struct {
	Name        string
	Title       string
	Description string
	Params      []Param
	Handler     ToolHandler
}
