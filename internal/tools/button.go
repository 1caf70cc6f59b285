package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// ButtonColors lists the colors press_button accepts, in display order.
var ButtonColors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

var buttonResponses = map[string]string{
	"red":    "🔴 RED BUTTON PRESSED! 🚨 Alert mode activated! Something exciting might happen!",
	"blue":   "🔵 BLUE BUTTON PRESSED! 🌊 Calm and cool vibes activated! All systems normal.",
	"green":  "🟢 GREEN BUTTON PRESSED! ✅ Go signal activated! Everything is good to go!",
	"yellow": "🟡 YELLOW BUTTON PRESSED! ⚠️ Caution mode activated! Please proceed carefully.",
	"purple": "🟣 PURPLE BUTTON PRESSED! ✨ Mysterious magical powers activated! Something special is happening!",
	"orange": "🟠 ORANGE BUTTON PRESSED! 🔥 Energy boost activated! Feeling energized and ready for action!",
}

func newPressButtonTool(Env) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(ToolPressButton),
		Title:       "Press Button Tool",
		Description: "Handles pressing colored buttons (red, blue, green, yellow, purple, orange) when user asks to press or click them.",
		Params: []schema.Param{
			schema.StringParam{Name: "color", Description: "The color of the button to press (red, blue, green, yellow, purple, orange)"},
			schema.StringParam{Name: "action", Description: "The action performed (press, click, push, etc.)", Optional: true},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			color := stringArg(args, "color")
			response, ok := buttonResponses[strings.ToLower(strings.TrimSpace(color))]
			if !ok {
				return schema.ErrorResult("❌ Invalid button color %q. Available colors: %s", color, strings.Join(ButtonColors, ", "))
			}
			return schema.TextContent(fmt.Sprintf("%s\n\n*Button press registered successfully!*", response))
		},
	}
}
