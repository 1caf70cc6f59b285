package tools

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// FunctionSchemas returns all tool definitions in function-calling format,
// one per tool, in registration order. Output is deterministic for a given
// registry so the model sees identical definitions on every round.
func FunctionSchemas(r *Registry) []schema.FunctionSchema {
	all := r.All()
	list := make([]schema.FunctionSchema, 0, len(all))
	for _, d := range all {
		list = append(list, schema.FunctionSchema{
			Type: "function",
			Function: schema.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  ParametersSchema(d.Params),
			},
		})
	}
	return list
}

// ParametersSchema renders params as a JSON Schema object. Parameters appear
// in Required unless marked optional.
func ParametersSchema(params []schema.Param) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(params)),
		Required:   []string{},
	}
	for _, p := range params {
		s.Properties[p.ParamName()] = paramSchema(p)
		if !p.IsOptional() {
			s.Required = append(s.Required, p.ParamName())
		}
	}
	return s
}

func paramSchema(p schema.Param) *jsonschema.Schema {
	switch p.(type) {
	case schema.StringParam:
		return &jsonschema.Schema{Type: "string", Description: p.ParamDescription()}
	case schema.NumberParam:
		return &jsonschema.Schema{Type: "number", Description: p.ParamDescription()}
	case schema.BoolParam:
		return &jsonschema.Schema{Type: "boolean", Description: p.ParamDescription()}
	default:
		return &jsonschema.Schema{Type: "string", Description: p.ParamDescription()}
	}
}
