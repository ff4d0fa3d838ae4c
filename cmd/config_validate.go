package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plucheck/config"
)

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file without loading it.",
	Long: `Validate a plucheck YAML configuration file and report the first
problem found. Without an argument, the active configuration file is
validated.`,
	Example: `
  # Validate the active config
  plucheck config validate

  # Validate a file before putting it in place
  plucheck config validate ./new-plucheck.yaml
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			path = viper.ConfigFileUsed()
		}
		if path == "" {
			return fmt.Errorf("no configuration file found to validate")
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config failed: %w", err)
		}
		if _, err := config.ValidateYAMLContent(content); err != nil {
			return fmt.Errorf("config validation failed in %s: %w", path, err)
		}

		fmt.Printf("Configuration is valid: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
