package provider

const (
	ProviderOllama     = "ollama"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderVLLM       = "vllm"
	ProviderLMStudio   = "lmstudio"
	ProviderCustom     = "custom"
)

// ProviderConfig selects the model backend and holds its credentials.
type ProviderConfig struct {
	Name         string            `json:"name"`
	APIBase      string            `json:"apiBase,omitempty"`
	APIKey       string            `json:"apiKey,omitempty"`
	Model        string            `json:"model"`
	ExtraHeaders map[string]string `json:"extraHeaders,omitempty"`
}

func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Name:    ProviderOllama,
		APIBase: "http://localhost:11434",
		Model:   "llama3.2:3b",
	}
}
