package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"plucheck/config"
	"plucheck/fix"
	"plucheck/item"
	"plucheck/output"
	"plucheck/pipeline"
	"plucheck/storage"
)

var (
	checkInput         string
	checkSchema        string
	checkReference     string
	checkFormat        string
	checkMaxHeaderRows int
	checkFix           bool
	checkFixOutput     string
	checkOutput        string
	checkOutputFormat  string
	checkDBPath        string
	checkNoHistory     bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check one upload file for duplicates and field errors",
	Long: `Read an upload file, locate its header row, match its columns to the
expected ones, and run every duplicate and field check.

With --reference, new codes are also checked against the active list export.
With --fix, a cleaned copy of the upload is written next to it (bad characters
stripped, long text shortened, prices rounded, VAT percentages mapped to codes).

Flags override the corresponding configuration values; each run is stored in
the local history database unless --no-history is given.`,
	Example: `
  # Check a product upload against the active list
  plucheck check -i NewProducts.xlsx --schema product --reference ActiveList.xlsx

  # Check an apparel upload, write findings and a cleaned copy
  plucheck check -i NewStyles.csv --schema clothing --output findings.csv --fix

  # Force the input format independent of extension
  plucheck check -i export.dat --format csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		schemaName := checkSchema
		if strings.TrimSpace(schemaName) == "" {
			schemaName = cfg.Check.Schema
		}
		maxHeaderRows := checkMaxHeaderRows
		if maxHeaderRows <= 0 {
			maxHeaderRows = cfg.Check.HeaderScanRows
		}
		autoFix := checkFix || cfg.Check.AutoFix

		report, err := pipeline.Run(pipeline.Options{
			SchemaName:    schemaName,
			UploadPath:    checkInput,
			ReferencePath: checkReference,
			Format:        checkFormat,
			MaxHeaderRows: maxHeaderRows,
			ExtraAliases:  cfg.Aliases,
			AutoFix:       autoFix,
		})
		if err != nil {
			return err
		}

		printReport(os.Stdout, report)

		if checkOutput != "" {
			format := checkOutputFormat
			if strings.TrimSpace(format) == "" {
				format = detectOutputFormat(checkOutput)
			}
			writer, err := output.WriterForFormat(format)
			if err != nil {
				return err
			}
			if err := writer.Write(checkOutput, report); err != nil {
				return err
			}
			fmt.Printf("Findings written to %s\n", checkOutput)
		}

		if report.Fixed != nil {
			fixedPath := checkFixOutput
			if strings.TrimSpace(fixedPath) == "" {
				fixedPath = output.FixedOutputPath(checkInput)
			}
			if err := output.WriteFixedTable(fixedPath, report.Fixed, report.FixChanges); err != nil {
				return err
			}
			fmt.Printf("Fixed copy written to %s (%d changes)\n", fixedPath, fix.Total(report.FixChanges))
		}

		if !checkNoHistory {
			dbPath := checkDBPath
			if strings.TrimSpace(dbPath) == "" {
				dbPath = cfg.History.Database
			}
			store, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			runID, err := store.SaveReport(report)
			if err != nil {
				return err
			}
			fmt.Printf("Run stored in history as #%d\n", runID)
		}

		return nil
	},
}

func printReport(w io.Writer, report *pipeline.Report) {
	fmt.Fprintf(w, "Checked %s (schema: %s)\n", report.UploadPath, report.SchemaName)
	fmt.Fprintf(w, "Header found on line %d. Rows read: %d, loaded: %d, skipped: %d\n",
		report.HeaderRow+1, report.RowsRead, report.RowsLoaded, report.RowsSkipped)
	if report.ReferenceCount > 0 {
		fmt.Fprintf(w, "Active list entries: %d\n", report.ReferenceCount)
	}

	for _, note := range report.Notes {
		fmt.Fprintf(w, "Note: %s\n", note)
	}

	for _, section := range report.Sections {
		fmt.Fprintf(w, "\n%s: %d\n", section.Title, len(section.Findings))
		if len(section.Findings) == 0 {
			fmt.Fprintln(w, "  All valid.")
			continue
		}
		for _, message := range item.Messages(section.Findings) {
			fmt.Fprintf(w, "  %s\n", message)
		}
	}

	fmt.Fprintf(w, "\nTotal findings: %d\n", report.TotalFindings())
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "Upload file to check")
	checkCmd.Flags().StringVarP(&checkSchema, "schema", "s", "", "Record schema: product|clothing (default from config)")
	checkCmd.Flags().StringVarP(&checkReference, "reference", "r", "", "Active list export to check new codes against")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	checkCmd.Flags().IntVar(&checkMaxHeaderRows, "max-header-rows", 0, "How many rows to scan for the header (default from config)")
	checkCmd.Flags().BoolVar(&checkFix, "fix", false, "Write a cleaned copy of the upload")
	checkCmd.Flags().StringVar(&checkFixOutput, "fix-output", "", "Path for the cleaned copy (default: Fixed-<name>.xlsx next to the upload)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Write findings to this file")
	checkCmd.Flags().StringVar(&checkOutputFormat, "output-format", "", "Findings format: csv|excel (optional, inferred from output extension)")
	checkCmd.Flags().StringVar(&checkDBPath, "db", "", "Path to the history database (default from config)")
	checkCmd.Flags().BoolVar(&checkNoHistory, "no-history", false, "Do not store this run in the history database")

	_ = checkCmd.MarkFlagRequired("input")
}
