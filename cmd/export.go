package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"plucheck/item"
	"plucheck/output"
	"plucheck/pipeline"
	"plucheck/storage"
)

var (
	exportRunID  int64
	exportMode   string
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored run to CSV/Excel",
	Long: `Export a run from the history database without re-reading the upload.

Modes:
- findings: export every finding of the run, one row each
- summary: export the per-category rollup (finding and line counts)

By default the most recent run is exported; --run selects an earlier one.
Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export the latest run's findings to CSV
  plucheck export --output ./findings.csv

  # Export a specific run to Excel
  plucheck export --run 3 --output ./findings.xlsx

  # Export the per-category summary
  plucheck export --mode summary --output ./summary.csv

  # Force Excel format independent of extension
  plucheck export --run 3 --format excel --output ./findings.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectOutputFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runID := exportRunID
		if runID == 0 {
			latest, found, err := store.LatestRunID()
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("history is empty, run a check first")
			}
			runID = latest
		}

		report, err := storedReport(store, runID)
		if err != nil {
			return err
		}

		rows, err := writeStoredRun(report, exportMode, format, exportOutput)
		if err != nil {
			return err
		}

		fmt.Printf("Export completed. Run: #%d, Rows: %d, Mode: %s, Format: %s, File: %s\n",
			runID, rows, exportMode, format, exportOutput)
		return nil
	},
}

// writeStoredRun renders one stored run in the selected mode and reports how
// many rows were written.
func writeStoredRun(report *pipeline.Report, mode, format, path string) (int, error) {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "findings":
		writer, err := output.WriterForFormat(format)
		if err != nil {
			return 0, err
		}
		if err := writer.Write(path, report); err != nil {
			return 0, err
		}
		return report.TotalFindings(), nil
	case "summary":
		summaries := output.Summarize(report)
		if err := output.WriteSummary(path, format, summaries); err != nil {
			return 0, err
		}
		return len(summaries), nil
	default:
		return 0, fmt.Errorf("unsupported export mode: %s (supported: findings, summary)", mode)
	}
}

// storedReport rebuilds a report from stored rows, grouping findings back
// into their sections in first-seen order.
func storedReport(store *storage.SQLiteStore, runID int64) (*pipeline.Report, error) {
	findings, err := store.FindingsForRun(runID)
	if err != nil {
		return nil, err
	}

	runs, err := store.ListRuns()
	if err != nil {
		return nil, err
	}

	report := &pipeline.Report{}
	for _, run := range runs {
		if run.ID == runID {
			report.SchemaName = run.SchemaName
			report.UploadPath = run.UploadFile
			report.HeaderRow = run.HeaderRow
			report.RowsLoaded = run.RowsLoaded
			break
		}
	}

	indexes := make(map[string]int)
	for _, stored := range findings {
		idx, seen := indexes[stored.Category]
		if !seen {
			idx = len(report.Sections)
			indexes[stored.Category] = idx
			report.Sections = append(report.Sections, pipeline.Section{Title: stored.Category})
		}
		report.Sections[idx].Findings = append(report.Sections[idx].Findings, item.Finding{
			Line:     stored.Line,
			RefIndex: stored.RefIndex,
			Message:  stored.Message,
		})
	}

	return report, nil
}

func detectOutputFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Int64Var(&exportRunID, "run", 0, "Run ID to export (default: the most recent run)")
	exportCmd.Flags().StringVar(&exportMode, "mode", "findings", "Export mode: findings|summary")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./plucheck.db", "Path to the history database")

	_ = exportCmd.MarkFlagRequired("output")
}
