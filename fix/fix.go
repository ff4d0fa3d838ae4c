// Package fix is the mechanical cleanup pass: it rewrites cell values that
// the validator would flag but that have an unambiguous repair — forbidden
// characters, over-long text, over-precise prices, VAT percentages instead
// of codes. It runs after resolution on the same resolved column names and
// reports every change it makes.
package fix

import (
	"fmt"
	"strconv"
	"strings"

	"plucheck/item"
	"plucheck/resolve"
	"plucheck/schema"
	"plucheck/table"
	"plucheck/validate"
)

// VATCodes maps VAT percentages to the point-of-sale VAT code.
var VATCodes = map[float64]int{
	0.0:  0,
	23.0: 1,
	13.5: 2,
	9.0:  3,
}

// Category is one group of applied changes, in display order.
type Category struct {
	Name    string
	Changes []string
}

// Run applies every fix to a copy of the table and returns the fixed copy
// with the per-category change log. The input table is not modified.
func Run(tbl table.Table, s schema.Schema, columns resolve.ColumnMap) (table.Table, []Category) {
	fixed := copyTable(tbl)

	categories := []Category{
		{Name: "Description Fixes", Changes: fixText(&fixed, columns, item.KeyDescription, s.Rules.DescriptionMaxLen, "description")},
		{Name: "Decimal Fixes", Changes: fixDecimals(&fixed, columns)},
		{Name: "VAT Fixes", Changes: fixVAT(&fixed, columns)},
	}
	if s.Rules.ColourMaxLen > 0 {
		categories = append(categories, Category{
			Name:    "Colour Fixes",
			Changes: fixText(&fixed, columns, item.KeyColour, s.Rules.ColourMaxLen, "colour description"),
		})
	}
	return fixed, categories
}

// Total counts changes across all categories.
func Total(categories []Category) int {
	total := 0
	for _, c := range categories {
		total += len(c.Changes)
	}
	return total
}

// fixText strips forbidden characters from a text column and truncates the
// remainder to the ceiling.
func fixText(tbl *table.Table, columns resolve.ColumnMap, key string, maxLen int, label string) []string {
	idx := columnIndex(tbl, columns, key)
	if idx < 0 {
		return nil
	}

	changes := make([]string, 0)
	for row := range tbl.Rows {
		original := tbl.Cell(row, idx)
		if original == "" {
			continue
		}

		cleaned := stripBadChars(original)
		if cleaned != original {
			changes = append(changes, fmt.Sprintf(
				"Line %d  |  Bad characters removed from %s: '%s', updated to '%s'",
				tbl.Line(row), label, original, cleaned,
			))
		}

		final := cleaned
		if maxLen > 0 && len([]rune(cleaned)) > maxLen {
			final = string([]rune(cleaned)[:maxLen])
			changes = append(changes, fmt.Sprintf(
				"Line %d  |  Long %s: '%s' shortened to '%s'",
				tbl.Line(row), label, original, final,
			))
		}

		if final != original {
			setCell(tbl, row, idx, final)
		}
	}
	return changes
}

// fixDecimals rounds price cells with more than two written decimal places.
func fixDecimals(tbl *table.Table, columns resolve.ColumnMap) []string {
	priceKeys := []string{item.KeyCostPrice, item.KeyRRP, item.KeySellingPrice, item.KeyStgPrice}

	changes := make([]string, 0)
	for _, key := range priceKeys {
		idx := columnIndex(tbl, columns, key)
		if idx < 0 {
			continue
		}
		for row := range tbl.Rows {
			original := tbl.Cell(row, idx)
			if _, err := strconv.ParseFloat(original, 64); err != nil {
				continue
			}
			if !hasExcessPlaces(original) {
				continue
			}

			rounded, ok := roundToTwoPlaces(original)
			if !ok {
				continue
			}
			setCell(tbl, row, idx, rounded)
			changes = append(changes, fmt.Sprintf(
				"Line %d  |  %s of %s rounded to %s", tbl.Line(row), key, original, rounded,
			))
		}
	}
	return changes
}

// fixVAT replaces known VAT percentages with their codes.
func fixVAT(tbl *table.Table, columns resolve.ColumnMap) []string {
	idx := columnIndex(tbl, columns, item.KeyVATRate)
	if idx < 0 {
		return nil
	}

	changes := make([]string, 0)
	for row := range tbl.Rows {
		original := tbl.Cell(row, idx)
		value, err := strconv.ParseFloat(original, 64)
		if err != nil {
			continue
		}
		code, known := VATCodes[value]
		if !known {
			continue
		}
		if original == strconv.Itoa(code) {
			continue
		}
		setCell(tbl, row, idx, strconv.Itoa(code))
		changes = append(changes, fmt.Sprintf(
			"Line %d  |  VAT Rate %s updated to code %d", tbl.Line(row), original, code,
		))
	}
	return changes
}

func stripBadChars(value string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(validate.BadChars, r) {
			return -1
		}
		return r
	}, value)
}

// roundToTwoPlaces rounds a decimal literal to two places half-up on the
// written digits, so "1.505" becomes "1.51" regardless of how the nearest
// float64 would round.
func roundToTwoPlaces(value string) (string, bool) {
	cleaned := strings.TrimSpace(value)
	sign := ""
	if strings.HasPrefix(cleaned, "-") || strings.HasPrefix(cleaned, "+") {
		sign = cleaned[:1]
		cleaned = cleaned[1:]
	}
	if sign == "+" {
		sign = ""
	}

	whole, fraction, hasPoint := strings.Cut(cleaned, ".")
	if !hasPoint || len(fraction) <= 2 {
		return value, false
	}
	for _, r := range whole + fraction {
		if r < '0' || r > '9' {
			return value, false
		}
	}

	cents, err := strconv.ParseInt(whole+fraction[:2], 10, 64)
	if err != nil {
		return value, false
	}
	if fraction[2] >= '5' {
		cents++
	}

	text := strconv.FormatInt(cents, 10)
	for len(text) < 3 {
		text = "0" + text
	}
	return sign + text[:len(text)-2] + "." + text[len(text)-2:], true
}

func hasExcessPlaces(value string) bool {
	_, fraction, hasPoint := strings.Cut(strings.TrimSpace(value), ".")
	return hasPoint && len(fraction) > 2
}

func columnIndex(tbl *table.Table, columns resolve.ColumnMap, key string) int {
	column, ok := columns.Column(key)
	if !ok {
		return -1
	}
	return tbl.ColumnIndex(column)
}

func copyTable(tbl table.Table) table.Table {
	rows := make([][]string, len(tbl.Rows))
	for i, row := range tbl.Rows {
		rows[i] = append([]string(nil), row...)
	}
	out := tbl
	out.Rows = rows
	out.Columns = append([]string(nil), tbl.Columns...)
	return out
}

func setCell(tbl *table.Table, row, col int, value string) {
	for len(tbl.Rows[row]) <= col {
		tbl.Rows[row] = append(tbl.Rows[row], "")
	}
	tbl.Rows[row][col] = value
}
