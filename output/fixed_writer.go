package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"plucheck/fix"
	"plucheck/table"
)

// FixedOutputPath names the cleaned copy next to the upload:
// Fixed-<name>.xlsx regardless of the input format.
func FixedOutputPath(uploadPath string) string {
	dir := filepath.Dir(uploadPath)
	base := filepath.Base(uploadPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "Fixed-"+base+".xlsx")
}

// WriteFixedTable saves the cleaned upload as a workbook: the data on the
// first sheet, the change log on a second sheet so the operator can see what
// was altered before re-submitting.
func WriteFixedTable(path string, tbl *table.Table, changes []fix.Category) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range tbl.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}
	for i := range tbl.Rows {
		row := i + 2
		for col := range tbl.Columns {
			value := tbl.Cell(i, col)
			if value == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := writeChangeLog(file, changes); err != nil {
		return err
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

func writeChangeLog(file *excelize.File, changes []fix.Category) error {
	const sheet = "Changes"
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("create changes sheet: %w", err)
	}

	headers := []string{"Category", "Change"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	row := 2
	for _, category := range changes {
		for _, change := range category.Changes {
			values := []string{category.Name, change}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := file.SetCellValue(sheet, cell, value); err != nil {
					return fmt.Errorf("set excel value %s: %w", cell, err)
				}
			}
			row++
		}
	}

	return nil
}
