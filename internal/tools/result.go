package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// Normalize reduces a handler result to the single text block a tool message
// can carry. Text segments are joined by newlines, plain text is used as is,
// anything else is serialised.
func Normalize(r schema.ToolResult) string {
	switch r.Kind {
	case schema.ResultSegments:
		parts := make([]string, 0, len(r.Segments))
		for _, s := range r.Segments {
			if s.Kind == schema.SegmentText {
				parts = append(parts, s.Text)
			}
		}
		return strings.Join(parts, "\n")
	case schema.ResultText:
		return r.Text
	default:
		return serialize(r.Value)
	}
}

func serialize(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
