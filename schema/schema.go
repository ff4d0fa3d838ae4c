package schema

import (
	"fmt"

	"plucheck/item"
)

// Field is one canonical field: a stable key plus every accepted header
// spelling, in preference order. The first alias is the canonical spelling
// used in "column not found" messages.
type Field struct {
	Key      string
	Aliases  []string
	Required bool
}

// Rules are the per-schema validation overrides. The identity ceiling
// differs on purpose: PLU codes allow 15 characters, style codes 12.
// ColourMaxLen is zero when the schema has no colour code. IdentityName is
// the display name used in finding messages ("PLU Code", "Style Code").
type Rules struct {
	IdentityName      string
	IdentityMaxLen    int
	ColourMaxLen      int
	DescriptionMaxLen int
}

// Schema describes one record variant as plain data. Adding a new variant
// means adding a Schema value, not touching the resolver or header locator.
type Schema struct {
	Name              string
	IdentityKey       string
	CompositeIdentity bool
	Fields            []Field
	Rules             Rules
	Build             func(values map[string]string, line int) item.Item
}

// SupportedNames lists the schema names accepted on the command line.
func SupportedNames() []string {
	return []string{"product", "clothing"}
}

// ByName returns the schema for a record variant.
func ByName(name string) (Schema, error) {
	switch normalize(name) {
	case "product", "products":
		return Product(), nil
	case "clothing", "clothes", "apparel":
		return Clothing(), nil
	default:
		return Schema{}, fmt.Errorf("unsupported schema: %s (valid: product, clothing)", name)
	}
}

// Field looks up a canonical field by key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// AllAliases flattens every alias across all fields, in field order. The
// header-row locator scores candidate rows against this list.
func (s Schema) AllAliases() []string {
	out := make([]string, 0, len(s.Fields)*3)
	for _, f := range s.Fields {
		out = append(out, f.Aliases...)
	}
	return out
}

// IdentityAliases returns the alias list of the identity field, used to find
// the matching column in the active reference list.
func (s Schema) IdentityAliases() []string {
	f, ok := s.Field(s.IdentityKey)
	if !ok {
		return nil
	}
	return f.Aliases
}

// WithExtraAliases returns a copy of the schema with configured alias
// spellings appended to the matching fields. Unknown keys are ignored so a
// config written for one schema does not break the other.
func (s Schema) WithExtraAliases(extra map[string][]string) Schema {
	if len(extra) == 0 {
		return s
	}
	fields := make([]Field, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f
		if more, ok := extra[f.Key]; ok && len(more) > 0 {
			aliases := make([]string, 0, len(f.Aliases)+len(more))
			aliases = append(aliases, f.Aliases...)
			aliases = append(aliases, more...)
			fields[i].Aliases = aliases
		}
	}
	s.Fields = fields
	return s
}
