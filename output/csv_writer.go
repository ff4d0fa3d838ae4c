package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"plucheck/pipeline"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, report *pipeline.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(findingHeaders()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, section := range report.Sections {
		for _, finding := range section.Findings {
			row := []string{
				section.Title,
				strconv.Itoa(finding.Line),
				finding.Message,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
