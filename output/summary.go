package output

import (
	"fmt"

	"plucheck/pipeline"
)

// CategorySummary is the per-check rollup shown after a run: how many
// findings each category produced and how many distinct upload lines they
// touch. Categories with zero findings are kept so the summary always lists
// every check that ran.
type CategorySummary struct {
	Title    string
	Findings int
	Lines    int
}

func Summarize(report *pipeline.Report) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(report.Sections))
	for _, section := range report.Sections {
		lines := make(map[int]struct{}, len(section.Findings))
		for _, finding := range section.Findings {
			lines[finding.Line] = struct{}{}
		}
		summaries = append(summaries, CategorySummary{
			Title:    section.Title,
			Findings: len(section.Findings),
			Lines:    len(lines),
		})
	}
	return summaries
}

func WriteSummary(path, format string, summaries []CategorySummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeSummaryCSV(path, summaries)
	case "excel", "xlsx":
		return writeSummaryExcel(path, summaries)
	default:
		return fmt.Errorf("unsupported output format for summary: %s", format)
	}
}
