package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a starter configuration file.",
	Long: `Write a starter configuration file with every setting listed and
commented out. An existing config file is left untouched.`,
	Example: `
  # Create default config at $HOME/.plucheck.yaml
  plucheck config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return createStarterConfig()
	},
}

func createStarterConfig() error {
	configPath, err := activeConfigPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := writeTemplateIfMissing(configPath)
	if err != nil {
		return err
	}
	if !created {
		fmt.Printf("Leaving existing config in place: %s\n", configPath)
		return nil
	}

	fmt.Printf("Starter config written to %s\n", configPath)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
