package tools

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func TestFunctionSchemas_Shape(t *testing.T) {
	d := stubTool("query")
	d.Params = []schema.Param{
		schema.StringParam{Name: "query", Description: "SQL"},
		schema.StringParam{Name: "connectionString", Description: "DSN", Optional: true},
		schema.NumberParam{Name: "limit", Description: "rows"},
		schema.BoolParam{Name: "dry", Description: "dry run", Optional: true},
	}
	reg, err := NewRegistryBuilder().WithTool(d).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defs := FunctionSchemas(reg)
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	def := defs[0]
	if def.Type != "function" || def.Function.Name != "query" {
		t.Errorf("unexpected definition header: %+v", def)
	}
	params := def.Function.Parameters
	if params.Type != "object" {
		t.Errorf("expected object schema, got %q", params.Type)
	}
	if got, want := params.Required, []string{"query", "limit"}; !reflect.DeepEqual(got, want) {
		t.Errorf("required = %v, want %v", got, want)
	}
	types := map[string]string{"query": "string", "connectionString": "string", "limit": "number", "dry": "boolean"}
	for name, typ := range types {
		p, ok := params.Properties[name]
		if !ok {
			t.Errorf("missing property %q", name)
			continue
		}
		if p.Type != typ {
			t.Errorf("property %q type = %q, want %q", name, p.Type, typ)
		}
	}
}

func TestFunctionSchemas_NoParams(t *testing.T) {
	d := stubTool("now")
	d.Params = nil
	reg, _ := NewRegistryBuilder().WithTool(d).Build()

	data, err := json.Marshal(FunctionSchemas(reg)[0].Function.Parameters)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["type"] != "object" {
		t.Errorf("expected type=object, got %v", decoded["type"])
	}
	// jsonschema omits empty properties and required, so a zero-parameter
	// tool goes on the wire as a bare object schema.
	for _, key := range []string{"required", "properties"} {
		if _, ok := decoded[key]; ok {
			t.Errorf("expected no %s key, got %s", key, data)
		}
	}
}

func TestFunctionSchemas_Deterministic(t *testing.T) {
	reg, err := Discover(DefaultCatalog(), nil, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := json.Marshal(FunctionSchemas(reg))
	for i := 0; i < 5; i++ {
		again, _ := json.Marshal(FunctionSchemas(reg))
		if string(again) != string(first) {
			t.Fatal("function schemas differ between calls")
		}
	}
}
