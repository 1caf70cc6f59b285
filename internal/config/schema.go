// Package config defines the configuration schema for toolbridge.
//
// JSON keys use camelCase.
package config

import (
	"os"
	"path/filepath"

	"github.com/crystaldolphin/toolbridge/internal/config/agent"
	"github.com/crystaldolphin/toolbridge/internal/config/provider"
	"github.com/crystaldolphin/toolbridge/internal/config/server"
	"github.com/crystaldolphin/toolbridge/internal/config/tool"
)

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // text or json
}

// Config is the root configuration object, loaded from ~/.toolbridge/config.json.
type Config struct {
	Provider provider.ProviderConfig `json:"provider"`
	Agent    agent.AgentConfig       `json:"agent"`
	Tools    tool.ToolsConfig        `json:"tools"`
	Server   server.ServerConfig     `json:"server"`
	Log      LogConfig               `json:"log"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		Provider: provider.DefaultProviderConfig(),
		Agent:    agent.DefaultAgentConfig(),
		Tools:    tool.DefaultToolConfigs(),
		Server:   server.DefaultServerConfig(),
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// WorkspacePath returns the expanded absolute path to the tool workspace.
func (c *Config) WorkspacePath() string {
	return expandHome(c.Tools.Workspace)
}

// ManifestPath returns the expanded tool manifest path, or "".
func (c *Config) ManifestPath() string {
	return expandHome(c.Tools.Manifest)
}

func expandHome(p string) string {
	if len(p) >= 2 && p[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
