package match

import "strings"

// NormalizeHeader canonicalizes a column header for comparison: trimmed,
// lower-cased, with spaces, underscores, and hyphens removed. Both canonical
// aliases and observed headers go through this before any matching.
func NormalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

// NormalizeIdentity canonicalizes an identity value (PLU code, style code)
// for comparison across independently loaded files. Spreadsheet readers hand
// numeric cells over in varying textual forms, so "483917.0" and "483917"
// must compare equal.
func NormalizeIdentity(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasSuffix(trimmed, ".0") && isDigits(strings.TrimSuffix(trimmed, ".0")) {
		return strings.TrimSuffix(trimmed, ".0")
	}
	return trimmed
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
