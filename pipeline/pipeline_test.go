package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func productUpload(t *testing.T) string {
	t.Helper()
	return writeCSV(t, "upload.csv",
		"PLU Code,Description,Cost Price,Barcode,VAT Rate\n"+
			"100,Widget,1.505,555,23\n"+
			"200,Tom's Gadget,2.00,556,9\n"+
			"200,Widget Two,3.00,555,0\n"+
			"300,already listed,4.00,,13.5\n")
}

func section(t *testing.T, report *Report, title string) Section {
	t.Helper()
	for _, s := range report.Sections {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("no section %q in %+v", title, report.Sections)
	return Section{}
}

func TestRun_ProductEndToEnd(t *testing.T) {
	t.Parallel()

	upload := productUpload(t)
	reference := writeCSV(t, "active.csv", "PLU Code\n300\n900\n")

	report, err := Run(Options{
		SchemaName:    "product",
		UploadPath:    upload,
		ReferencePath: reference,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.HeaderRow != 0 {
		t.Fatalf("header row = %d, want 0", report.HeaderRow)
	}
	if report.RowsRead != 4 || report.RowsLoaded != 4 || report.RowsSkipped != 0 {
		t.Fatalf("row counts = %d/%d/%d", report.RowsRead, report.RowsLoaded, report.RowsSkipped)
	}
	if report.ReferenceCount != 2 {
		t.Fatalf("reference count = %d, want 2", report.ReferenceCount)
	}
	if len(report.Notes) == 0 {
		t.Fatal("expected resolution notes for the missing optional columns")
	}

	cross := section(t, report, "Duplicate PLU Code Errors")
	if len(cross.Findings) != 1 {
		t.Fatalf("cross-list findings: %+v", cross.Findings)
	}
	if f := cross.Findings[0]; f.Line != 5 || f.RefIndex != 0 {
		t.Fatalf("cross-list finding line/ref = %d/%d, want 5/0", f.Line, f.RefIndex)
	}

	within := section(t, report, "Duplicate PLU Codes Within Uploaded File")
	if len(within.Findings) != 1 || !strings.Contains(within.Findings[0].Message, "200") {
		t.Fatalf("within-file findings: %+v", within.Findings)
	}

	barcodes := section(t, report, "Duplicate Barcode Errors")
	if len(barcodes.Findings) != 1 || !strings.Contains(barcodes.Findings[0].Message, "555") {
		t.Fatalf("barcode findings: %+v", barcodes.Findings)
	}

	chars := section(t, report, "Unusable Character Errors")
	if len(chars.Findings) != 1 || chars.Findings[0].Line != 3 {
		t.Fatalf("character findings: %+v", chars.Findings)
	}

	decimals := section(t, report, "Decimal Formatting Errors")
	if len(decimals.Findings) != 1 || decimals.Findings[0].Line != 2 {
		t.Fatalf("decimal findings: %+v", decimals.Findings)
	}
	if !strings.Contains(decimals.Findings[0].Message, "cost price") {
		t.Fatalf("decimal finding should name the field: %q", decimals.Findings[0].Message)
	}

	lengths := section(t, report, "Field Length Errors")
	if len(lengths.Findings) != 0 {
		t.Fatalf("unexpected length findings: %+v", lengths.Findings)
	}

	if report.TotalFindings() != len(report.Findings()) {
		t.Fatal("TotalFindings and Findings disagree")
	}
	if report.Fixed != nil {
		t.Fatal("fix pass ran without AutoFix")
	}
}

func TestRun_AutoFix(t *testing.T) {
	t.Parallel()

	report, err := Run(Options{
		SchemaName: "product",
		UploadPath: productUpload(t),
		AutoFix:    true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Fixed == nil {
		t.Fatal("AutoFix produced no fixed table")
	}

	if got := report.Fixed.Cell(0, 2); got != "1.51" {
		t.Fatalf("cost price not rounded: %q", got)
	}
	if got := report.Fixed.Cell(1, 1); got != "Toms Gadget" {
		t.Fatalf("bad characters not stripped: %q", got)
	}
	if got := report.Fixed.Cell(0, 4); got != "1" {
		t.Fatalf("VAT 23 should map to code 1, got %q", got)
	}
	if got := report.Fixed.Cell(3, 4); got != "2" {
		t.Fatalf("VAT 13.5 should map to code 2, got %q", got)
	}
	if len(report.FixChanges) == 0 {
		t.Fatal("no fix change log")
	}
}

func TestRun_ClothingCompositeDuplicates(t *testing.T) {
	t.Parallel()

	upload := writeCSV(t, "clothing.csv",
		"Style Code,Description,Size,Colour,Barcode\n"+
			"A1,Tee,S,Red,111\n"+
			"A1,Tee,M,Red,112\n"+
			"A1,Tee,S,Red,113\n")

	report, err := Run(Options{SchemaName: "clothing", UploadPath: upload})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	within := section(t, report, "Duplicate Style Codes Within Uploaded File")
	if len(within.Findings) != 1 {
		t.Fatalf("size runs must not flag, identical triples must: %+v", within.Findings)
	}
	if f := within.Findings[0]; f.Line != 4 || !strings.Contains(f.Message, "line 2") {
		t.Fatalf("composite finding should cite the first occurrence: %+v", f)
	}

	barcodes := section(t, report, "Duplicate Barcode Errors")
	if len(barcodes.Findings) != 0 {
		t.Fatalf("distinct barcodes flagged: %+v", barcodes.Findings)
	}
}

func TestRun_ReferenceWithoutIdentityColumn(t *testing.T) {
	t.Parallel()

	_, err := Run(Options{
		SchemaName:    "product",
		UploadPath:    productUpload(t),
		ReferencePath: writeCSV(t, "active.csv", "Nonsense\nx\n"),
	})
	if err == nil || !strings.Contains(err.Error(), "identity column") {
		t.Fatalf("expected identity column error, got %v", err)
	}
}

func TestRun_UnknownSchema(t *testing.T) {
	t.Parallel()

	_, err := Run(Options{SchemaName: "furniture", UploadPath: "unused.csv"})
	if err == nil || !strings.Contains(err.Error(), "unsupported schema") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestRun_MissingUploadFile(t *testing.T) {
	t.Parallel()

	_, err := Run(Options{
		SchemaName: "product",
		UploadPath: filepath.Join(t.TempDir(), "nope.csv"),
	})
	if err == nil {
		t.Fatal("expected read error for missing upload")
	}
}
