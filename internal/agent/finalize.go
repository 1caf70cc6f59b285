package agent

import (
	"strings"

	"github.com/crystaldolphin/toolbridge/internal/shared/llmutils"
)

// Finalize removes <think>…</think> blocks and surrounding whitespace. An
// answer that was only reasoning becomes "".
func Finalize(content string) string {
	return strings.TrimSpace(llmutils.StripThink(content))
}
