package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/toolbridge/internal/tools"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List registered tools",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print the function schemas sent to the model")
}

func runTools(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	c, err := buildFrom(cfg)
	if err != nil {
		return err
	}
	reg := c.Registry()

	if toolsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tools.FunctionSchemas(reg))
	}

	fmt.Printf("%s %d tools\n\n", logo, reg.Len())
	for _, d := range reg.All() {
		params := make([]string, 0, len(d.Params))
		for _, p := range d.Params {
			name := p.ParamName()
			if p.IsOptional() {
				name += "?"
			}
			params = append(params, name)
		}
		fmt.Printf("  %-28s %s\n", d.Name+"("+strings.Join(params, ", ")+")", d.Description)
	}
	return nil
}
