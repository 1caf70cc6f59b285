package tools

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// stringArg returns args[key] coerced to a string. Models sometimes send
// numbers or booleans where text is expected; those are formatted.
func stringArg(args schema.Args, key string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// requiredString is stringArg that reports a missing or blank value.
func requiredString(args schema.Args, key string) (string, bool) {
	s := stringArg(args, key)
	return s, strings.TrimSpace(s) != ""
}

// intArg coerces args[key] to an int, accepting JSON numbers and numeric strings.
func intArg(args schema.Args, key string) (int, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false
	}
	if s, isStr := v.(string); isStr {
		v = strings.TrimSpace(s)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
