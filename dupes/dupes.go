// Package dupes holds the duplicate checks run over loaded records: against
// the active reference list, within the upload by identity, within the
// upload by composite style/size/colour key, and across records sharing a
// barcode. All checks are pure functions over already-loaded data.
package dupes

import (
	"fmt"
	"strings"

	"plucheck/internal/match"
	"plucheck/item"
)

// CrossList flags records whose identity already appears in the active
// reference list. Each finding carries the record's origin line and the
// 0-based reference index of the first occurrence; the message renders the
// reference position as its spreadsheet-equivalent line (index + header
// offset), which is what operators look up.
func CrossList(items []item.Item, reference []string) []item.Finding {
	firstIndex := make(map[string]int, len(reference))
	for i, value := range reference {
		key := match.NormalizeIdentity(value)
		if _, seen := firstIndex[key]; !seen {
			firstIndex[key] = i
		}
	}

	findings := make([]item.Finding, 0)
	for _, it := range items {
		identity := match.NormalizeIdentity(it.Identity())
		if identity == "" {
			continue
		}
		index, hit := firstIndex[identity]
		if !hit {
			continue
		}
		findings = append(findings, item.Finding{
			Line:     it.Line(),
			RefIndex: index,
			Message: fmt.Sprintf("Line %d  |  %s %s is already in the system (active list line %d)",
				it.Line(), it.Label(), identity, index+2),
		})
	}
	return findings
}

// WithinFile groups records by normalized identity and reports one finding
// per group that occurs more than once, listing every origin line.
func WithinFile(items []item.Item) []item.Finding {
	type group struct {
		identity string
		label    string
		lines    []int
	}

	order := make([]string, 0)
	groups := make(map[string]*group)
	for _, it := range items {
		identity := match.NormalizeIdentity(it.Identity())
		if identity == "" {
			continue
		}
		g, seen := groups[identity]
		if !seen {
			g = &group{identity: identity, label: it.Label()}
			groups[identity] = g
			order = append(order, identity)
		}
		g.lines = append(g.lines, it.Line())
	}

	findings := make([]item.Finding, 0)
	for _, identity := range order {
		g := groups[identity]
		if len(g.lines) < 2 {
			continue
		}
		findings = append(findings, item.NewFinding(g.lines[0], fmt.Sprintf(
			"%s %s appears %d times in the upload (lines %s)",
			g.label, g.identity, len(g.lines), joinLines(g.lines),
		)))
	}
	return findings
}

// WithinFileComposite flags repeats of the full identity key. Apparel reuses
// a style code across sizes and colours, so only an identical
// style/size/colour triple is a true duplicate; the second and later
// occurrences are flagged with their own origin lines, the first is not.
func WithinFileComposite(items []item.Item) []item.Finding {
	seen := make(map[string]int, len(items))
	findings := make([]item.Finding, 0)
	for _, it := range items {
		parts := it.KeyParts()
		normalized := make([]string, len(parts))
		for i, part := range parts {
			normalized[i] = match.NormalizeIdentity(part)
		}
		key := strings.Join(normalized, "\x1f")
		if strings.Trim(key, "\x1f") == "" {
			continue
		}

		firstLine, dup := seen[key]
		if !dup {
			seen[key] = it.Line()
			continue
		}
		findings = append(findings, item.NewFinding(it.Line(), fmt.Sprintf(
			"Line %d  |  %s %s (%s) already appears at line %d",
			it.Line(), it.Label(), normalized[0], strings.Join(normalized[1:], "/"), firstLine,
		)))
	}
	return findings
}

// SharedBarcodes reports barcodes carried by more than one distinct
// identity. This is a cross-record consistency check: the same item listed
// twice is caught by the identity checks, two different items on one barcode
// is a data error in its own right. Records without a barcode are skipped.
func SharedBarcodes(items []item.Item) []item.Finding {
	type occurrence struct {
		identity string
		line     int
	}

	order := make([]string, 0)
	byBarcode := make(map[string][]occurrence)
	for _, it := range items {
		barcode := strings.TrimSpace(it.Barcode())
		if barcode == "" {
			continue
		}
		if _, seen := byBarcode[barcode]; !seen {
			order = append(order, barcode)
		}
		byBarcode[barcode] = append(byBarcode[barcode], occurrence{
			identity: match.NormalizeIdentity(it.Identity()),
			line:     it.Line(),
		})
	}

	findings := make([]item.Finding, 0)
	for _, barcode := range order {
		occurrences := byBarcode[barcode]
		distinct := make(map[string]struct{}, len(occurrences))
		for _, o := range occurrences {
			distinct[o.identity] = struct{}{}
		}
		if len(distinct) < 2 {
			continue
		}

		described := make([]string, 0, len(occurrences))
		for _, o := range occurrences {
			described = append(described, fmt.Sprintf("%s (line %d)", o.identity, o.line))
		}
		findings = append(findings, item.NewFinding(occurrences[0].line, fmt.Sprintf(
			"Barcode %s is shared by: %s", barcode, strings.Join(described, ", "),
		)))
	}
	return findings
}

func joinLines(lines []int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fmt.Sprintf("%d", line)
	}
	return strings.Join(out, ", ")
}
