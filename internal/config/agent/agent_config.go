package agent

import "time"

type AgentConfig struct {
	MaxRounds        int      `json:"maxRounds"`
	ModelTimeout     int      `json:"modelTimeout"` // seconds
	ToolTimeout      int      `json:"toolTimeout"`  // seconds
	MaxParallelTools int      `json:"maxParallelTools"`
	Temperature      *float64 `json:"temperature,omitempty"`
	SystemPrompt     string   `json:"systemPrompt,omitempty"`
}

func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		MaxRounds:        10,
		ModelTimeout:     120,
		ToolTimeout:      30,
		MaxParallelTools: 4,
	}
}

func (c AgentConfig) ModelTimeoutDuration() time.Duration {
	return time.Duration(c.ModelTimeout) * time.Second
}

func (c AgentConfig) ToolTimeoutDuration() time.Duration {
	return time.Duration(c.ToolTimeout) * time.Second
}
