package resolve

import (
	"fmt"

	"plucheck/internal/match"
	"plucheck/schema"
)

// Status says how a canonical field was bound to an actual column.
type Status string

const (
	StatusExact   Status = "exact"
	StatusFuzzy   Status = "fuzzy"
	StatusMissing Status = "missing"
)

// Resolution is the outcome for one canonical field.
type Resolution struct {
	Key     string
	Column  string
	Status  Status
	Score   float64
	Message string
}

// ColumnMap binds canonical field keys to actual column names for one
// upload. Built once by Resolve, read-only afterwards.
type ColumnMap struct {
	order    []string
	byKey    map[string]Resolution
	warnings []string
}

// Column returns the actual column resolved for a field key; ok is false
// when the field is unresolved.
func (m ColumnMap) Column(key string) (string, bool) {
	r, found := m.byKey[key]
	if !found || r.Status == StatusMissing {
		return "", false
	}
	return r.Column, true
}

// Resolutions returns every per-field outcome in schema field order.
func (m ColumnMap) Resolutions() []Resolution {
	out := make([]Resolution, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.byKey[key])
	}
	return out
}

// Missing lists the field keys that resolved to no column.
func (m ColumnMap) Missing() []string {
	missing := make([]string, 0)
	for _, key := range m.order {
		if m.byKey[key].Status == StatusMissing {
			missing = append(missing, key)
		}
	}
	return missing
}

// Messages returns the human-readable notes produced during resolution:
// fuzzy renames, missing columns, and contention warnings.
func (m ColumnMap) Messages() []string {
	out := make([]string, 0)
	for _, key := range m.order {
		if msg := m.byKey[key].Message; msg != "" {
			out = append(out, msg)
		}
	}
	out = append(out, m.warnings...)
	return out
}

// Resolve binds every field of a schema to at most one actual column. Fields
// resolve independently: exact normalized alias equality first, then the
// best fuzzy pair at or above FuzzyThreshold, else missing. When two fields
// land on the same column a warning is recorded but the assignment stands.
func Resolve(s schema.Schema, columns []string) ColumnMap {
	m := ColumnMap{
		order: make([]string, 0, len(s.Fields)),
		byKey: make(map[string]Resolution, len(s.Fields)),
	}

	taken := make(map[string]string, len(s.Fields))
	for _, field := range s.Fields {
		resolution := resolveField(field, columns)
		m.order = append(m.order, field.Key)
		m.byKey[field.Key] = resolution

		if resolution.Status == StatusMissing {
			continue
		}
		if prior, clash := taken[resolution.Column]; clash {
			m.warnings = append(m.warnings, fmt.Sprintf(
				"Column %q matched both %q and %q; values are read for both fields",
				resolution.Column, prior, field.Key,
			))
			continue
		}
		taken[resolution.Column] = field.Key
	}

	return m
}

// FindColumn resolves a single alias list against actual columns. Used
// directly for the reference-list identity column.
func FindColumn(columns []string, aliases []string) (string, Status, float64) {
	for _, alias := range aliases {
		target := match.NormalizeHeader(alias)
		for _, column := range columns {
			if match.NormalizeHeader(column) == target {
				return column, StatusExact, 1.0
			}
		}
	}

	bestColumn := ""
	bestScore := 0.0
	for _, alias := range aliases {
		for _, column := range columns {
			if score := match.CharMatch(alias, column); score > bestScore {
				bestScore = score
				bestColumn = column
			}
		}
	}
	if bestScore >= FuzzyThreshold {
		return bestColumn, StatusFuzzy, bestScore
	}

	return "", StatusMissing, bestScore
}

func resolveField(field schema.Field, columns []string) Resolution {
	column, status, score := FindColumn(columns, field.Aliases)
	resolution := Resolution{Key: field.Key, Column: column, Status: status, Score: score}

	canonical := field.Aliases[0]
	switch status {
	case StatusFuzzy:
		resolution.Message = fmt.Sprintf("Matched column %q to expected %q by fuzzy match", column, canonical)
	case StatusMissing:
		resolution.Message = fmt.Sprintf("Column %q not found", canonical)
	}
	return resolution
}
