package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage plucheck configuration file values.",
	Long: `Create, edit, display, and delete the plucheck configuration file.

The configuration stores the default schema, header scan depth, auto-fix
behaviour, history database path, and site-specific header aliases:
- check.schema / check.header_scan_rows / check.auto_fix
- history.database
- aliases.<field_key>[]`,
	Example: `
  # Create default config in $HOME/.plucheck.yaml
  plucheck config create

  # Show active config and source file
  plucheck config show

  # Open active config in editor (creates example if missing)
  plucheck config edit

  # Delete active config file
  plucheck config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
