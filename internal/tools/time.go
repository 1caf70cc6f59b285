package tools

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

var (
	hoursRE   = regexp.MustCompile(`(\d+)\s*h`)
	minutesRE = regexp.MustCompile(`(\d+)\s*m`)
)

func newCurrentTimeTool(env Env) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(ToolCurrentTime),
		Title:       "Current time",
		Description: "Get the current date and time in ISO 8601 format.",
		Handler: func(context.Context, schema.Args) schema.ToolResult {
			return schema.TextContent(env.now().UTC().Format(time.RFC3339))
		},
	}
}

func newAddTimeTool(env Env) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(ToolAddTime),
		Title:       "Add time",
		Description: `Add an offset such as "2h 30m" to the current time.`,
		Params: []schema.Param{
			schema.StringParam{Name: "offset", Description: `Offset in hours and minutes, e.g. "2h 30m"`},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			d, ok := parseOffset(stringArg(args, "offset"))
			if !ok {
				return schema.ErrorResult(`Error: invalid offset %q, expected e.g. "2h 30m"`, stringArg(args, "offset"))
			}
			return schema.TextContent(env.now().UTC().Add(d).Format(time.RFC3339))
		},
	}
}

// parseOffset reads "<n>h" and "<n>m" components. At least one must appear.
func parseOffset(s string) (time.Duration, bool) {
	var d time.Duration
	found := false
	if m := hoursRE.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		d += time.Duration(n) * time.Hour
		found = true
	}
	if m := minutesRE.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		d += time.Duration(n) * time.Minute
		found = true
	}
	return d, found
}
