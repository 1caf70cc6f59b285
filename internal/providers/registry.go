package providers

import "strings"

// Wire selects the request/response dialect a provider speaks.
type Wire string

const (
	WireOllama Wire = "ollama" // POST {base}/api/chat
	WireOpenAI Wire = "openai" // POST {base}/chat/completions
)

// ProviderSpec is the metadata record for one model provider.
type ProviderSpec struct {
	Name           string // config value, e.g. "ollama"
	DisplayName    string // shown in `toolbridge status`
	Wire           Wire
	DefaultAPIBase string
	EnvKey         string // conventional env var for the API key
	NeedsAPIKey    bool
	DefaultModel   string
}

// Label returns the display name, defaulting to Title-cased Name.
func (s ProviderSpec) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return strings.ToUpper(s.Name[:1]) + s.Name[1:]
}

// PROVIDERS is the provider registry. Order = status display order.
var PROVIDERS = []ProviderSpec{
	{
		Name:           "ollama",
		DisplayName:    "Ollama",
		Wire:           WireOllama,
		DefaultAPIBase: "http://localhost:11434",
		DefaultModel:   "llama3.2:3b",
	},
	{
		Name:           "openai",
		DisplayName:    "OpenAI",
		Wire:           WireOpenAI,
		DefaultAPIBase: "https://api.openai.com/v1",
		EnvKey:         "OPENAI_API_KEY",
		NeedsAPIKey:    true,
		DefaultModel:   "gpt-4o-mini",
	},
	{
		Name:           "openrouter",
		DisplayName:    "OpenRouter",
		Wire:           WireOpenAI,
		DefaultAPIBase: "https://openrouter.ai/api/v1",
		EnvKey:         "OPENROUTER_API_KEY",
		NeedsAPIKey:    true,
	},
	{
		Name:           "vllm",
		DisplayName:    "vLLM/Local",
		Wire:           WireOpenAI,
		DefaultAPIBase: "http://localhost:8000/v1",
	},
	{
		Name:           "lmstudio",
		DisplayName:    "LM Studio",
		Wire:           WireOpenAI,
		DefaultAPIBase: "http://localhost:1234/v1",
	},
	{
		Name:        "custom",
		DisplayName: "Custom",
		Wire:        WireOpenAI,
	},
}

// FindByName returns the spec registered under name, accepting "-" for "_"
// and any letter case.
func FindByName(name string) *ProviderSpec {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "")
	norm = strings.ReplaceAll(norm, "-", "")
	for i := range PROVIDERS {
		if PROVIDERS[i].Name == norm {
			return &PROVIDERS[i]
		}
	}
	return nil
}
