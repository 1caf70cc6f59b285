package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/toolbridge/internal/config"
	"github.com/crystaldolphin/toolbridge/internal/tools"
)

const manifestFile = "tools.yaml"

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize configuration, tool manifest and workspace",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := resolvedConfigPath()

	var cfg *config.Config
	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config already exists at %s\n", cfgPath)
		fmt.Printf("Press Enter to refresh (keep existing values) or Ctrl+C to cancel: ")
		fmt.Scanln()
		existing, loadErr := config.Load(cfgPath)
		if loadErr != nil {
			def := config.DefaultConfig()
			existing = &def
		}
		cfg = existing
	} else {
		def := config.DefaultConfig()
		cfg = &def
	}

	manifestPath := cfg.ManifestPath()
	if manifestPath == "" {
		manifestPath = filepath.Join(filepath.Dir(cfgPath), manifestFile)
		cfg.Tools.Manifest = manifestPath
	}
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		if err := tools.SaveManifest(manifestPath, tools.DefaultManifest(tools.DefaultCatalog())); err != nil {
			return err
		}
		fmt.Printf("✓ Tool manifest at %s\n", manifestPath)
	}

	if err := config.Save(cfg, cfgPath); err != nil {
		return err
	}
	fmt.Printf("✓ Config at %s\n", cfgPath)

	workspace := cfg.WorkspacePath()
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	fmt.Printf("✓ Workspace at %s\n", workspace)

	fmt.Printf("\n%s toolbridge is ready!\n\n", logo)
	fmt.Println("Next steps:")
	fmt.Println("  1. Start Ollama and pull a tool-capable model: ollama pull llama3.2:3b")
	fmt.Printf("  2. Chat: toolbridge chat -m \"What time is it?\"\n")
	fmt.Printf("  3. Serve: toolbridge serve\n")
	return nil
}
