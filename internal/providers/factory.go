package providers

import (
	"fmt"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// Params are the raw values needed to construct any schema.Gateway.
// Extracted from config.Config by the caller to avoid an import cycle.
type Params struct {
	ProviderName string // registry name, e.g. "ollama", "openrouter"
	APIKey       string
	APIBase      string
	Model        string
	Temperature  *float64
	ExtraHeaders map[string]string
	Timeout      time.Duration // HTTP client ceiling; per-round deadlines come from the caller
}

// New creates the gateway for the given params.
//
//   - wire "ollama" → OllamaProvider (native /api/chat)
//   - otherwise     → OpenAIProvider (any OpenAI-compatible endpoint)
func New(p Params) (schema.Gateway, error) {
	name := p.ProviderName
	if name == "" {
		name = "ollama"
	}
	spec := FindByName(name)
	if spec == nil {
		return nil, fmt.Errorf("unknown provider %q", p.ProviderName)
	}

	model := p.Model
	if model == "" {
		model = spec.DefaultModel
	}
	if model == "" {
		return nil, fmt.Errorf("provider %q needs a model", spec.Name)
	}
	apiBase := p.APIBase
	if apiBase == "" {
		apiBase = spec.DefaultAPIBase
	}
	if apiBase == "" {
		return nil, fmt.Errorf("provider %q needs an apiBase", spec.Name)
	}
	if spec.NeedsAPIKey && p.APIKey == "" {
		return nil, fmt.Errorf("provider %q needs an API key", spec.Name)
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	switch spec.Wire {
	case WireOllama:
		return NewOllamaProvider(apiBase, model, p.Temperature, timeout), nil
	default:
		return NewOpenAIProvider(p.APIKey, apiBase, model, p.Temperature, p.ExtraHeaders, timeout), nil
	}
}
