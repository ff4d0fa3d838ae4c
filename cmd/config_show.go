package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plucheck/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  plucheck config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file found, showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("check.schema: %s\n", cfg.Check.Schema)
		fmt.Printf("check.header_scan_rows: %d\n", cfg.Check.HeaderScanRows)
		fmt.Printf("check.auto_fix: %t\n", cfg.Check.AutoFix)
		fmt.Printf("history.database: %s\n", cfg.History.Database)
		fmt.Printf("aliases: %d\n", len(cfg.Aliases))

		keys := make([]string, 0, len(cfg.Aliases))
		for key := range cfg.Aliases {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for i, alias := range cfg.Aliases[key] {
				fmt.Printf("aliases.%s[%d]: %s\n", key, i, alias)
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
