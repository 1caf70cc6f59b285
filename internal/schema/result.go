package schema

import (
	"encoding/json"
	"fmt"
)

// SegmentText is the kind of a plain text content segment.
const SegmentText = "text"

// Segment is one block of a structured tool result.
type Segment struct {
	Kind string
	Text string
}

// ResultKind selects which field of a ToolResult carries the payload.
type ResultKind int

const (
	ResultValue ResultKind = iota // arbitrary structured data
	ResultSegments
	ResultText
)

// ToolResult is what a handler returns: content segments, plain text or an
// arbitrary value. IsError marks failure payloads; they still reach the model
// as text so it can react.
type ToolResult struct {
	Kind     ResultKind
	Segments []Segment
	Text     string
	Value    any
	IsError  bool
}

// TextContent returns a result with a single text segment.
func TextContent(text string) ToolResult {
	return ToolResult{
		Kind:     ResultSegments,
		Segments: []Segment{{Kind: SegmentText, Text: text}},
	}
}

// PlainText returns a result carrying text verbatim.
func PlainText(text string) ToolResult {
	return ToolResult{Kind: ResultText, Text: text}
}

// StructuredValue returns a result carrying v, serialised when normalised.
func StructuredValue(v any) ToolResult {
	return ToolResult{Kind: ResultValue, Value: v}
}

// JSONContent renders v as indented JSON inside a single text segment.
func JSONContent(v any) ToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorResult("Error: cannot encode result: %v", err)
	}
	return TextContent(string(data))
}

// JSONError renders v as an indented JSON text segment flagged as an error.
func JSONError(v any) ToolResult {
	r := JSONContent(v)
	r.IsError = true
	return r
}

// ErrorResult returns a text segment flagged as an error.
func ErrorResult(format string, args ...any) ToolResult {
	r := TextContent(fmt.Sprintf(format, args...))
	r.IsError = true
	return r
}
