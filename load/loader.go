package load

import (
	"fmt"
	"strings"

	"plucheck/item"
	"plucheck/resolve"
	"plucheck/schema"
	"plucheck/table"
)

// Result carries the loaded records plus row accounting for the summary
// line.
type Result struct {
	RowsRead    int
	RowsLoaded  int
	RowsSkipped int
	Items       []item.Item
}

// Records builds one record per data row using the resolved column map.
// Unresolved optional fields load as absent values; an unresolved required
// field (identity, description) is fatal and produces no records. Rows whose
// resolved cells are all empty are skipped, not errors — supplier files
// routinely end in blank padding rows.
func Records(s schema.Schema, tbl table.Table, columns resolve.ColumnMap) (*Result, error) {
	if err := checkRequired(s, columns); err != nil {
		return nil, err
	}

	indexes := make(map[string]int, len(s.Fields))
	for _, field := range s.Fields {
		column, ok := columns.Column(field.Key)
		if !ok {
			continue
		}
		if idx := tbl.ColumnIndex(column); idx >= 0 {
			indexes[field.Key] = idx
		}
	}

	result := &Result{Items: make([]item.Item, 0, len(tbl.Rows))}
	for row := range tbl.Rows {
		result.RowsRead++

		values := make(map[string]string, len(indexes))
		empty := true
		for key, idx := range indexes {
			value := tbl.Cell(row, idx)
			values[key] = value
			if value != "" {
				empty = false
			}
		}
		if empty {
			result.RowsSkipped++
			continue
		}

		result.RowsLoaded++
		result.Items = append(result.Items, s.Build(values, tbl.Line(row)))
	}

	return result, nil
}

func checkRequired(s schema.Schema, columns resolve.ColumnMap) error {
	missing := make([]string, 0, 2)
	for _, key := range columns.Missing() {
		field, ok := s.Field(key)
		if !ok || !field.Required {
			continue
		}
		missing = append(missing, field.Aliases[0])
	}
	if len(missing) > 0 {
		return fmt.Errorf("required column(s) not found in upload: %s", strings.Join(missing, ", "))
	}
	return nil
}
