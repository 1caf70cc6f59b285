package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/toolbridge/internal/providers"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show toolbridge status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := resolvedConfigPath()

	fmt.Printf("%s toolbridge Status\n\n", logo)
	fmt.Printf("Config:    %s %s\n", cfgPath, mark(cfgPath))

	cfg, err := loadConfig(true)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	ws := cfg.WorkspacePath()
	fmt.Printf("Workspace: %s %s\n", ws, mark(ws))
	if mp := cfg.ManifestPath(); mp != "" {
		fmt.Printf("Manifest:  %s %s\n", mp, mark(mp))
	}

	label := cfg.Provider.Name
	if spec := providers.FindByName(cfg.Provider.Name); spec != nil {
		label = spec.Label()
	}
	fmt.Printf("Provider:  %s\n", label)
	fmt.Printf("Server:    %s:%d\n\n", cfg.Server.Host, cfg.Server.Port)

	c, err := buildFrom(cfg)
	if err != nil {
		fmt.Printf("  (could not wire services: %v)\n", err)
		return nil
	}
	fmt.Printf("Model:     %s\n", c.Gateway().Model())
	fmt.Printf("Tools:     %d\n", c.Registry().Len())
	fmt.Printf("Rounds:    %d max\n", c.Orchestrator().Settings().MaxRounds)
	return nil
}

func mark(path string) string {
	if _, err := os.Stat(path); err == nil {
		return "✓"
	}
	return "✗"
}
