// Package validate applies the per-record field rules: length ceilings,
// forbidden characters, and decimal precision on price fields. Every check
// is a pure predicate producing findings, never errors; a full run always
// reports everything wrong with the file, not just the first issue.
package validate

import (
	"fmt"
	"strings"

	"plucheck/item"
	"plucheck/schema"
)

// BadChars are forbidden in every field value; they break the downstream
// point-of-sale import format.
const BadChars = "',%"

// Run applies every rule to every record and aggregates the findings in
// record order.
func Run(items []item.Item, rules schema.Rules) []item.Finding {
	findings := make([]item.Finding, 0)
	findings = append(findings, IdentityLengths(items, rules)...)
	findings = append(findings, ColourLengths(items, rules)...)
	findings = append(findings, DescriptionLengths(items, rules)...)
	findings = append(findings, BadCharacters(items)...)
	findings = append(findings, DecimalPlaces(items)...)
	return findings
}

// IdentityLengths flags identity codes longer than the schema's ceiling
// (15 for PLU codes, 12 for style codes).
func IdentityLengths(items []item.Item, rules schema.Rules) []item.Finding {
	if rules.IdentityMaxLen <= 0 {
		return nil
	}
	findings := make([]item.Finding, 0)
	for _, it := range items {
		identity := strings.TrimSpace(it.Identity())
		length := len([]rune(identity))
		if length <= rules.IdentityMaxLen {
			continue
		}
		findings = append(findings, item.NewFinding(it.Line(), fmt.Sprintf(
			"Line %d  |  %s %s has %s length of %d. Must be under %d.",
			it.Line(), it.Label(), identity, rules.IdentityName, length, rules.IdentityMaxLen,
		)))
	}
	return findings
}

// ColourLengths flags colour codes over the ceiling. Schemas without a
// colour code set ColourMaxLen to zero and skip the check entirely.
func ColourLengths(items []item.Item, rules schema.Rules) []item.Finding {
	if rules.ColourMaxLen <= 0 {
		return nil
	}
	findings := make([]item.Finding, 0)
	for _, it := range items {
		colour := fieldValue(it, item.KeyColour)
		length := len([]rune(colour))
		if length <= rules.ColourMaxLen {
			continue
		}
		findings = append(findings, item.NewFinding(it.Line(), fmt.Sprintf(
			"Line %d  |  %s %s has Colour Code length of %d. Must be under %d.",
			it.Line(), it.Label(), it.Identity(), length, rules.ColourMaxLen,
		)))
	}
	return findings
}

// DescriptionLengths flags descriptions over the ceiling.
func DescriptionLengths(items []item.Item, rules schema.Rules) []item.Finding {
	if rules.DescriptionMaxLen <= 0 {
		return nil
	}
	findings := make([]item.Finding, 0)
	for _, it := range items {
		description := fieldValue(it, item.KeyDescription)
		length := len([]rune(description))
		if length <= rules.DescriptionMaxLen {
			continue
		}
		findings = append(findings, item.NewFinding(it.Line(), fmt.Sprintf(
			"Line %d  |  %s %s has description length of %d. Must be under %d.",
			it.Line(), it.Label(), it.Identity(), length, rules.DescriptionMaxLen,
		)))
	}
	return findings
}

// BadCharacters scans every string field of each record and reports all
// offending field names together in one finding per record.
func BadCharacters(items []item.Item) []item.Finding {
	findings := make([]item.Finding, 0)
	for _, it := range items {
		badFields := make([]string, 0)
		for _, field := range it.Fields() {
			if strings.ContainsAny(field.Value, BadChars) {
				badFields = append(badFields, field.Name)
			}
		}
		if len(badFields) == 0 {
			continue
		}
		findings = append(findings, item.NewFinding(it.Line(), fmt.Sprintf(
			"Line %d  |  %s %s contains invalid character(s) %s in [%s]",
			it.Line(), it.Label(), it.Identity(), BadChars, strings.Join(badFields, ", "),
		)))
	}
	return findings
}

// DecimalPlaces flags price fields carrying more than two decimal digits.
// Precision is read off the cell's decimal text, never a float conversion,
// so 19.99 stored as the nearest double cannot false-positive. Blank or
// non-numeric price cells are skipped: trade price in particular is usually
// empty and that is not an error.
func DecimalPlaces(items []item.Item) []item.Finding {
	findings := make([]item.Finding, 0)
	for _, it := range items {
		badFields := make([]string, 0)
		for _, price := range it.Prices() {
			places, ok := decimalPlacesOf(price.Value)
			if !ok {
				continue
			}
			if places > 2 {
				badFields = append(badFields, price.Name)
			}
		}
		if len(badFields) == 0 {
			continue
		}
		findings = append(findings, item.NewFinding(it.Line(), fmt.Sprintf(
			"Line %d  |  %s %s has decimal place error in [%s]. Must be 2 decimal places or less.",
			it.Line(), it.Label(), it.Identity(), strings.Join(badFields, ", "),
		)))
	}
	return findings
}

// decimalPlacesOf counts the fractional digits of a decimal literal as
// written. "12.300" counts three places even though the value only needs
// two, matching how the point-of-sale import reads the cell. ok is false
// for blank or non-numeric text.
func decimalPlacesOf(value string) (int, bool) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, false
	}
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "" || cleaned == "." {
		return 0, false
	}

	whole, fraction, hasPoint := strings.Cut(cleaned, ".")
	if !digitsOnly(whole) || (hasPoint && !digitsOnly(fraction)) {
		return 0, false
	}
	if whole == "" && fraction == "" {
		return 0, false
	}
	return len(fraction), true
}

func digitsOnly(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func fieldValue(it item.Item, key string) string {
	for _, field := range it.Fields() {
		if field.Name == key {
			return field.Value
		}
	}
	return ""
}
