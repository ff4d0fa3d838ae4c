package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"plucheck/pipeline"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, report *pipeline.Report) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range findingHeaders() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	row := 2
	for _, section := range report.Sections {
		for _, finding := range section.Findings {
			values := []any{section.Title, finding.Line, finding.Message}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := file.SetCellValue(sheet, cell, value); err != nil {
					return fmt.Errorf("set excel value %s: %w", cell, err)
				}
			}
			row++
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
