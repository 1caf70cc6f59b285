package schema

import "time"

// AgentSettings bounds one orchestration run.
type AgentSettings struct {
	MaxRounds    int
	ModelTimeout time.Duration
}

func NewAgentSettings(maxRounds int, modelTimeout time.Duration) AgentSettings {
	return AgentSettings{
		MaxRounds:    maxRounds,
		ModelTimeout: modelTimeout,
	}
}
