package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plucheck/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plucheck",
	Short: "Check new-product uploads for duplicates and field errors before import.",
	Long: `
**********************************************
*               PLU CHECK                    *
**********************************************

This CLI reads a new-product upload (Excel, CSV), locates the real header row,
matches renamed columns back to the expected ones, and reports duplicate codes,
duplicate barcodes, and field formatting errors before the file reaches the
point-of-sale import. Findings can be exported to CSV or Excel and each run is
kept in a local SQLite history.

Supported input formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv
`,
	Example: `
  # Create configuration file
  plucheck config create

  # Check a general merchandise upload against the active list
  plucheck check -i NewProducts.xlsx --schema product --reference ActiveList.xlsx

  # Check an apparel upload and write a cleaned copy
  plucheck check -i NewStyles.csv --schema clothing --fix

  # Export the findings of the last run
  plucheck export --output ./findings.csv

  # List previous runs
  plucheck history
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.plucheck.yaml, then ./.plucheck.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	return cmd != nil && cmd.Name() == "check"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".plucheck" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".plucheck")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: plucheck config create")
	}
}
