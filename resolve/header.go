package resolve

import "plucheck/internal/match"

const (
	// FuzzyThreshold is the minimum CharMatch score for a header cell to
	// count as a match for an alias, shared by header detection and column
	// resolution.
	FuzzyThreshold = 0.8

	// HeaderRowThreshold is the minimum fraction of expected aliases a row
	// must match to be accepted as the header. Low enough to tolerate files
	// missing several optional columns, high enough that data rows with a
	// few coincidental tokens do not win.
	HeaderRowThreshold = 0.3

	// DefaultHeaderScanRows bounds how deep the locator looks for a header.
	DefaultHeaderScanRows = 10
)

// DetectHeaderRow scans the first maxRows rows of a raw grid and returns the
// index of the row most likely to be the real header. Supplier files often
// carry a title row or blank padding above the header. Each row is scored by
// the fraction of expected aliases whose best CharMatch against any cell
// reaches FuzzyThreshold; the best row wins if its ratio reaches
// HeaderRowThreshold, otherwise row 0 is assumed.
func DetectHeaderRow(grid [][]string, expectedAliases []string, maxRows int) int {
	if maxRows <= 0 {
		maxRows = DefaultHeaderScanRows
	}
	if maxRows > len(grid) {
		maxRows = len(grid)
	}
	if len(expectedAliases) == 0 {
		return 0
	}

	bestRow := 0
	bestRatio := -1.0
	for i := 0; i < maxRows; i++ {
		ratio := headerMatchRatio(grid[i], expectedAliases)
		if ratio > bestRatio {
			bestRow = i
			bestRatio = ratio
		}
	}

	if bestRatio >= HeaderRowThreshold {
		return bestRow
	}
	return 0
}

func headerMatchRatio(row []string, aliases []string) float64 {
	matched := 0
	for _, alias := range aliases {
		best := 0.0
		for _, cell := range row {
			if score := match.CharMatch(alias, cell); score > best {
				best = score
			}
		}
		if best >= FuzzyThreshold {
			matched++
		}
	}
	return float64(matched) / float64(len(aliases))
}
