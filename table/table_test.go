package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFromGrid_SlicesAtHeaderRow(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Supplier Upload July"},
		{},
		{" PLU Code ", "Description", "Barcode"},
		{"100", "Mug", "500001"},
		{"200", "Plate"},
	}

	tbl := FromGrid("upload.xlsx", grid, 2)
	if got := tbl.Columns; len(got) != 3 || got[0] != "PLU Code" {
		t.Fatalf("unexpected columns: %v", got)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(tbl.Rows))
	}
	if got := tbl.Cell(1, 2); got != "" {
		t.Fatalf("short row should read empty, got %q", got)
	}
	if got := tbl.Line(0); got != 4 {
		t.Fatalf("first data row line = %d, want 4", got)
	}
}

func TestTable_Column(t *testing.T) {
	t.Parallel()

	tbl := FromGrid("active.xlsx", [][]string{
		{"PLU"},
		{"100"},
		{""},
		{"300"},
	}, 0)

	got := tbl.Column("PLU")
	if len(got) != 2 || got[0] != "100" || got[1] != "300" {
		t.Fatalf("unexpected column values: %v", got)
	}
	if tbl.Column("Barcode") != nil {
		t.Fatalf("missing column should return nil")
	}
}

func TestCSVReader_ReadGrid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "upload.csv")
	content := "plu code,description\n100,Mug\n200,\"Plate, large\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	grid, err := (&CSVReader{}).ReadGrid(path)
	if err != nil {
		t.Fatalf("read grid: %v", err)
	}
	if len(grid) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(grid))
	}
	if grid[2][1] != "Plate, large" {
		t.Fatalf("quoted cell mangled: %q", grid[2][1])
	}
}

func TestExcelReader_ReadGrid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	writeExcelFixture(t, path, [][]string{
		{"plu code", "description"},
		{"100", "Mug"},
	})

	grid, err := (&ExcelReader{}).ReadGrid(path)
	if err != nil {
		t.Fatalf("read grid: %v", err)
	}
	if len(grid) != 2 || grid[1][0] != "100" {
		t.Fatalf("unexpected grid: %v", grid)
	}
}

func TestReaderForPath(t *testing.T) {
	t.Parallel()

	if _, err := ReaderForPath("upload.xlsx", ""); err != nil {
		t.Fatalf("xlsx: %v", err)
	}
	if _, err := ReaderForPath("upload.csv", ""); err != nil {
		t.Fatalf("csv: %v", err)
	}
	if _, err := ReaderForPath("upload.txt", "csv"); err != nil {
		t.Fatalf("explicit format: %v", err)
	}
	if _, err := ReaderForPath("upload.txt", ""); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
}

func writeExcelFixture(t *testing.T, path string, rows [][]string) {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
}
