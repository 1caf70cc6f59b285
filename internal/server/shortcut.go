package server

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

var buttonRE = regexp.MustCompile(`(?:press|click)\s+(red|blue|green|yellow|purple|orange)\s+button`)

// ButtonShortcut recognises "press <color> button" style requests and
// returns the canned single-message transcript front ends send for them.
func ButtonShortcut(text string) (schema.Transcript, bool) {
	m := buttonRE.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return schema.Transcript{}, false
	}
	return schema.NewTranscript(schema.NewUserMessage(fmt.Sprintf("Press %s button", m[1]))), true
}
