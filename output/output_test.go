package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"plucheck/fix"
	"plucheck/item"
	"plucheck/pipeline"
	"plucheck/table"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		SchemaName: "product",
		UploadPath: "upload.xlsx",
		Sections: []pipeline.Section{
			{
				Title: "Duplicate PLU Code Errors",
				Findings: []item.Finding{
					{Line: 5, RefIndex: 12, Message: "Line 5  |  Product 300 is already in the system (active list line 14)"},
					item.NewFinding(9, "Line 9  |  Product 400 is already in the system (active list line 3)"),
				},
			},
			{Title: "Duplicate Barcode Errors"},
			{
				Title: "Decimal Formatting Errors",
				Findings: []item.Finding{
					item.NewFinding(5, "Line 5  |  Product 300 has decimal place error in [cost price]. Must be 2 decimal places or less."),
				},
			},
		},
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	if _, err := WriterForFormat("csv"); err != nil {
		t.Fatalf("csv writer: %v", err)
	}
	if _, err := WriterForFormat(" Excel "); err != nil {
		t.Fatalf("excel writer: %v", err)
	}
	if _, err := WriterForFormat("pdf"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestCSVWriter_WritesFindingsPerSection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "findings.csv")
	writer := &CSVWriter{}
	if err := writer.Write(path, sampleReport()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 findings, got %d rows", len(rows))
	}
	if rows[0][0] != "Category" || rows[0][1] != "Line" {
		t.Fatalf("unexpected headers: %v", rows[0])
	}
	if rows[1][0] != "Duplicate PLU Code Errors" || rows[1][1] != "5" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[3][0] != "Decimal Formatting Errors" {
		t.Fatalf("unexpected last row: %v", rows[3])
	}
}

func TestExcelWriter_WritesFindingsPerSection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "findings.xlsx")
	writer := &ExcelWriter{}
	if err := writer.Write(path, sampleReport()); err != nil {
		t.Fatalf("write excel: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 findings, got %d rows", len(rows))
	}
	if rows[1][0] != "Duplicate PLU Code Errors" {
		t.Fatalf("unexpected first finding row: %v", rows[1])
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	summaries := Summarize(sampleReport())
	if len(summaries) != 3 {
		t.Fatalf("every section should be summarized, got %d", len(summaries))
	}
	if summaries[0].Findings != 2 || summaries[0].Lines != 2 {
		t.Fatalf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].Findings != 0 || summaries[1].Lines != 0 {
		t.Fatalf("empty section should summarize to zero: %+v", summaries[1])
	}
}

func TestWriteSummary_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummary(path, "csv", Summarize(sampleReport())); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 categories, got %d rows", len(rows))
	}
	if rows[1][1] != "2" {
		t.Fatalf("unexpected findings count: %v", rows[1])
	}
}

func TestFixedOutputPath(t *testing.T) {
	t.Parallel()

	got := FixedOutputPath(filepath.Join("uploads", "march.csv"))
	want := filepath.Join("uploads", "Fixed-march.xlsx")
	if got != want {
		t.Fatalf("FixedOutputPath = %q, want %q", got, want)
	}
}

func TestWriteFixedTable(t *testing.T) {
	t.Parallel()

	tbl := table.FromGrid("upload.csv", [][]string{
		{"PLU Code", "Description"},
		{"100", "Toms Mug"},
		{"200", "Plate"},
	}, 0)
	changes := []fix.Category{
		{Name: "Description Fixes", Changes: []string{"Line 2  |  Bad characters removed from description: 'Tom's Mug', updated to 'Toms Mug'"}},
	}

	path := filepath.Join(t.TempDir(), "Fixed-upload.xlsx")
	if err := WriteFixedTable(path, &tbl, changes); err != nil {
		t.Fatalf("write fixed table: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		t.Fatalf("read data sheet: %v", err)
	}
	if len(rows) != 3 || rows[1][0] != "100" || rows[1][1] != "Toms Mug" {
		t.Fatalf("unexpected data sheet: %v", rows)
	}

	changeRows, err := file.GetRows("Changes")
	if err != nil {
		t.Fatalf("read changes sheet: %v", err)
	}
	if len(changeRows) != 2 || changeRows[1][0] != "Description Fixes" {
		t.Fatalf("unexpected changes sheet: %v", changeRows)
	}
}
