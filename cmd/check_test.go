package cmd

import (
	"bytes"
	"strings"
	"testing"

	"plucheck/item"
	"plucheck/pipeline"
)

func TestPrintReport(t *testing.T) {
	report := &pipeline.Report{
		SchemaName:  "product",
		UploadPath:  "NewProducts.xlsx",
		HeaderRow:   2,
		Notes:       []string{`Matched column "Item Description" to expected "Description" by fuzzy match`},
		RowsRead:    10,
		RowsLoaded:  9,
		RowsSkipped: 1,
		Sections: []pipeline.Section{
			{
				Title: "Duplicate Barcode Errors",
				Findings: []item.Finding{
					item.NewFinding(4, "Line 4  |  Barcode 555 is shared with line 7"),
				},
			},
			{Title: "Field Length Errors"},
		},
	}

	var buf bytes.Buffer
	printReport(&buf, report)
	out := buf.String()

	if !strings.Contains(out, "Checked NewProducts.xlsx (schema: product)") {
		t.Fatalf("missing run header in output:\n%s", out)
	}
	if !strings.Contains(out, "Header found on line 3. Rows read: 10, loaded: 9, skipped: 1") {
		t.Fatalf("missing row accounting in output:\n%s", out)
	}
	if !strings.Contains(out, `Note: Matched column "Item Description"`) {
		t.Fatalf("missing resolution note in output:\n%s", out)
	}
	if !strings.Contains(out, "Duplicate Barcode Errors: 1") {
		t.Fatalf("missing section count in output:\n%s", out)
	}
	if !strings.Contains(out, "  Line 4  |  Barcode 555 is shared with line 7") {
		t.Fatalf("missing finding message in output:\n%s", out)
	}
	if !strings.Contains(out, "Field Length Errors: 0\n  All valid.") {
		t.Fatalf("clean section should print All valid.:\n%s", out)
	}
	if !strings.Contains(out, "Total findings: 1") {
		t.Fatalf("missing total in output:\n%s", out)
	}
}
