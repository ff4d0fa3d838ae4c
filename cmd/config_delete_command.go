package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the active configuration file.",
	Long: `Remove the configuration file plucheck is currently reading. Every
setting falls back to its default on the next run.

Errors out when no configuration file is active.`,
	Example: `
  # Remove the active config
  plucheck config delete

  # Remove a config at a custom path
  plucheck --configFile ./custom-plucheck.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return fmt.Errorf("no configuration file is in use")
		}

		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("removing configuration file failed: %w", err)
		}

		fmt.Printf("Removed config file %s; defaults apply from now on\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
