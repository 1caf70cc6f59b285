package tool

// ExecToolConfig bounds the external commands system tools run.
type ExecToolConfig struct {
	Timeout int `json:"timeout"` // seconds
}

func DefaultExecToolConfig() ExecToolConfig {
	return ExecToolConfig{Timeout: 20}
}
