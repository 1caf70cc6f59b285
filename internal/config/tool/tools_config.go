package tool

// ToolsConfig groups all tool-level settings.
type ToolsConfig struct {
	Manifest            string         `json:"manifest,omitempty"` // YAML file selecting tools; empty enables all
	Workspace           string         `json:"workspace"`
	RestrictToWorkspace bool           `json:"restrictToWorkspace"`
	Web                 WebToolsConfig `json:"web"`
	Exec                ExecToolConfig `json:"exec"`
}

func DefaultToolConfigs() ToolsConfig {
	return ToolsConfig{
		Workspace: "~/.toolbridge/workspace",
		Web:       DefaultWebToolsConfig(),
		Exec:      DefaultExecToolConfig(),
	}
}
