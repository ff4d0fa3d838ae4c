package table

import "strings"

// Table is a tabular file after the header row has been located. Columns
// hold the raw header cells (trimmed, original spelling); Rows hold the data
// rows below the header. HeaderRow is the 0-based grid index of the header.
type Table struct {
	Path      string
	HeaderRow int
	Columns   []string
	Rows      [][]string
}

// FromGrid slices a raw grid at the detected header row. Rows above the
// header (titles, blank padding) are dropped.
func FromGrid(path string, grid [][]string, headerRow int) Table {
	t := Table{Path: path, HeaderRow: headerRow}
	if headerRow < 0 || headerRow >= len(grid) {
		return t
	}

	columns := make([]string, len(grid[headerRow]))
	for i, cell := range grid[headerRow] {
		columns[i] = strings.TrimSpace(cell)
	}
	t.Columns = columns
	t.Rows = grid[headerRow+1:]
	return t
}

// ColumnIndex returns the position of an actual column name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed value at a data row and column index. Short rows
// read as empty cells, matching how spreadsheets drop trailing blanks.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// Line converts a data row offset to its 1-based spreadsheet line, counting
// the header row itself.
func (t Table) Line(row int) int {
	return t.HeaderRow + row + 2
}

// Column collects every non-empty value of one column by actual name. The
// reference list loader uses this to pull the active identity column.
func (t Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for row := range t.Rows {
		if value := t.Cell(row, idx); value != "" {
			values = append(values, value)
		}
	}
	return values
}
