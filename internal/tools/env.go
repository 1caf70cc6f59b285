package tools

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func newGetEnvTool(Env) schema.ToolDescriptor {
	type envValue struct {
		Variable string `json:"variable"`
		Value    string `json:"value"`
		Exists   bool   `json:"exists"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolGetEnv),
		Title:       "Get Environment Variable",
		Description: "Gets environment variable value.",
		Params: []schema.Param{
			schema.StringParam{Name: "variableName", Description: "The name of the environment variable to retrieve"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			name, ok := requiredString(args, "variableName")
			if !ok {
				return schema.JSONError(errorBody{Error: "variableName is required"})
			}
			value, exists := os.LookupEnv(name)
			if value == "" {
				value = "Not found"
			}
			return schema.JSONContent(envValue{Variable: name, Value: value, Exists: exists})
		},
	}
}

func newListEnvTool(Env) schema.ToolDescriptor {
	type envList struct {
		Count     int      `json:"count"`
		Variables []string `json:"variables"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolListEnv),
		Title:       "List Environment Variables",
		Description: "Lists all environment variables (keys only for security).",
		Handler: func(context.Context, schema.Args) schema.ToolResult {
			environ := os.Environ()
			keys := make([]string, 0, len(environ))
			for _, kv := range environ {
				if k, _, ok := strings.Cut(kv, "="); ok && k != "" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			return schema.JSONContent(envList{Count: len(keys), Variables: keys})
		},
	}
}
