// Package output renders check reports to files: findings as CSV or Excel,
// and the fixed copy of an upload as a new workbook.
package output

import (
	"fmt"
	"strings"

	"plucheck/pipeline"
)

type Writer interface {
	Write(path string, report *pipeline.Report) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func findingHeaders() []string {
	return []string{"Category", "Line", "Message"}
}
