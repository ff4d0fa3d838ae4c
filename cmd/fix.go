package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plucheck/config"
	"plucheck/fix"
	"plucheck/output"
	"plucheck/pipeline"
)

var (
	fixInput  string
	fixSchema string
	fixFormat string
	fixOutput string
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Write a cleaned copy of an upload without storing a run",
	Long: `Apply every mechanical fix to an upload and write the cleaned copy:
bad characters stripped, over-long text shortened, prices rounded to two
decimal places, VAT percentages mapped to codes.

This is "check --fix" without the history entry, for quickly repairing a file
that has already been reviewed.`,
	Example: `
  # Clean a product upload in place next to the original
  plucheck fix -i NewProducts.xlsx

  # Clean an apparel upload to an explicit path
  plucheck fix -i NewStyles.csv --schema clothing --output ./Cleaned.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		schemaName := fixSchema
		if strings.TrimSpace(schemaName) == "" {
			schemaName = cfg.Check.Schema
		}

		report, err := pipeline.Run(pipeline.Options{
			SchemaName:    schemaName,
			UploadPath:    fixInput,
			Format:        fixFormat,
			MaxHeaderRows: cfg.Check.HeaderScanRows,
			ExtraAliases:  cfg.Aliases,
			AutoFix:       true,
		})
		if err != nil {
			return err
		}

		fixedPath := fixOutput
		if strings.TrimSpace(fixedPath) == "" {
			fixedPath = output.FixedOutputPath(fixInput)
		}
		if err := output.WriteFixedTable(fixedPath, report.Fixed, report.FixChanges); err != nil {
			return err
		}

		for _, category := range report.FixChanges {
			fmt.Printf("%s: %d\n", category.Name, len(category.Changes))
			for _, change := range category.Changes {
				fmt.Printf("  %s\n", change)
			}
		}
		fmt.Printf("Fixed copy written to %s (%d changes)\n", fixedPath, fix.Total(report.FixChanges))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().StringVarP(&fixInput, "input", "i", "", "Upload file to fix")
	fixCmd.Flags().StringVarP(&fixSchema, "schema", "s", "", "Record schema: product|clothing (default from config)")
	fixCmd.Flags().StringVarP(&fixFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	fixCmd.Flags().StringVarP(&fixOutput, "output", "o", "", "Path for the cleaned copy (default: Fixed-<name>.xlsx next to the upload)")

	_ = fixCmd.MarkFlagRequired("input")
}
