package load

import (
	"strings"
	"testing"

	"plucheck/item"
	"plucheck/resolve"
	"plucheck/schema"
	"plucheck/table"
)

func productTable() table.Table {
	return table.FromGrid("upload.xlsx", [][]string{
		{"Title row"},
		{"PLU Code", "Description", "Cost Price", "Barcode"},
		{"100", "Mug", "1.50", "500001"},
		{"", "", "", ""},
		{"200", "Plate", "2.345", "500002"},
	}, 1)
}

func TestRecords_LoadsTypedRowsWithOriginLines(t *testing.T) {
	t.Parallel()

	s := schema.Product()
	tbl := productTable()
	columns := resolve.Resolve(s, tbl.Columns)

	result, err := Records(s, tbl, columns)
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if result.RowsRead != 3 || result.RowsLoaded != 2 || result.RowsSkipped != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	first, ok := result.Items[0].(*item.Product)
	if !ok {
		t.Fatalf("expected *item.Product, got %T", result.Items[0])
	}
	if first.PLUCode != "100" || first.Description != "Mug" || first.CostPrice != "1.50" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	// Header is spreadsheet row 2, so the first data row is line 3.
	if first.OriginLine != 3 {
		t.Fatalf("origin line = %d, want 3", first.OriginLine)
	}
	if got := result.Items[1].Line(); got != 5 {
		t.Fatalf("second record line = %d, want 5 (blank row still counts)", got)
	}
}

func TestRecords_UnresolvedOptionalFieldLoadsAbsent(t *testing.T) {
	t.Parallel()

	s := schema.Product()
	tbl := productTable()
	columns := resolve.Resolve(s, tbl.Columns)

	result, err := Records(s, tbl, columns)
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	p := result.Items[0].(*item.Product)
	if p.Season != "" || p.Web != "" {
		t.Fatalf("unresolved fields should be empty, got season=%q web=%q", p.Season, p.Web)
	}
}

func TestRecords_MissingRequiredColumnIsFatal(t *testing.T) {
	t.Parallel()

	s := schema.Product()
	tbl := table.FromGrid("upload.xlsx", [][]string{
		{"Description", "Cost Price"},
		{"Mug", "1.50"},
	}, 0)
	columns := resolve.Resolve(s, tbl.Columns)

	_, err := Records(s, tbl, columns)
	if err == nil {
		t.Fatalf("expected fatal error for missing identity column")
	}
	if !strings.Contains(err.Error(), "plu code") {
		t.Fatalf("error should name the canonical column: %v", err)
	}
}

func TestRecords_ClothingCompositeFields(t *testing.T) {
	t.Parallel()

	s := schema.Clothing()
	tbl := table.FromGrid("clothing.xlsx", [][]string{
		{"Style Code", "Description", "Size", "Colour", "Barcode"},
		{"A1", "Tee", "M", "Red", "600001"},
	}, 0)
	columns := resolve.Resolve(s, tbl.Columns)

	result, err := Records(s, tbl, columns)
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	c := result.Items[0].(*item.Clothing)
	parts := c.KeyParts()
	if len(parts) != 3 || parts[0] != "A1" || parts[1] != "M" || parts[2] != "Red" {
		t.Fatalf("unexpected key parts: %v", parts)
	}
	if c.OriginLine != 2 {
		t.Fatalf("origin line = %d, want 2", c.OriginLine)
	}
}
