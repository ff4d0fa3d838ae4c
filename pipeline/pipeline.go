// Package pipeline runs a full upload check end to end: read the file,
// locate the header, resolve columns, load records, then run the duplicate
// and field checks and the optional fix pass. The result is a Report the
// CLI and the writers render without re-deriving anything.
package pipeline

import (
	"fmt"

	"plucheck/dupes"
	"plucheck/fix"
	"plucheck/item"
	"plucheck/load"
	"plucheck/resolve"
	"plucheck/schema"
	"plucheck/table"
	"plucheck/validate"
)

// Options selects what to check and how.
type Options struct {
	SchemaName    string
	UploadPath    string
	ReferencePath string
	Format        string
	MaxHeaderRows int
	ExtraAliases  map[string][]string
	AutoFix       bool
}

// Section is one category of findings in display order.
type Section struct {
	Title    string
	Findings []item.Finding
}

// Report is the complete outcome of one run.
type Report struct {
	SchemaName     string
	UploadPath     string
	HeaderRow      int
	Notes          []string
	Resolutions    []resolve.Resolution
	RowsRead       int
	RowsLoaded     int
	RowsSkipped    int
	ReferenceCount int
	Sections       []Section

	// Set only when Options.AutoFix was on.
	Fixed      *table.Table
	FixChanges []fix.Category
}

// TotalFindings counts findings across all sections.
func (r *Report) TotalFindings() int {
	total := 0
	for _, s := range r.Sections {
		total += len(s.Findings)
	}
	return total
}

// Findings flattens every section in display order.
func (r *Report) Findings() []item.Finding {
	out := make([]item.Finding, 0, r.TotalFindings())
	for _, s := range r.Sections {
		out = append(out, s.Findings...)
	}
	return out
}

// Run checks one upload and returns the report. The upload path and schema
// name are required; the reference list and the fix pass are optional.
func Run(opts Options) (*Report, error) {
	s, err := schema.ByName(opts.SchemaName)
	if err != nil {
		return nil, err
	}
	s = s.WithExtraAliases(opts.ExtraAliases)

	reader, err := table.ReaderForPath(opts.UploadPath, opts.Format)
	if err != nil {
		return nil, err
	}
	grid, err := reader.ReadGrid(opts.UploadPath)
	if err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}

	headerRow := resolve.DetectHeaderRow(grid, s.AllAliases(), opts.MaxHeaderRows)
	tbl := table.FromGrid(opts.UploadPath, grid, headerRow)
	columns := resolve.Resolve(s, tbl.Columns)

	loaded, err := load.Records(s, tbl, columns)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SchemaName:  s.Name,
		UploadPath:  opts.UploadPath,
		HeaderRow:   headerRow,
		Notes:       columns.Messages(),
		Resolutions: columns.Resolutions(),
		RowsRead:    loaded.RowsRead,
		RowsLoaded:  loaded.RowsLoaded,
		RowsSkipped: loaded.RowsSkipped,
	}

	if opts.ReferencePath != "" {
		reference, err := loadReference(opts.ReferencePath, s)
		if err != nil {
			return nil, err
		}
		report.ReferenceCount = len(reference)
		report.Sections = append(report.Sections, Section{
			Title:    fmt.Sprintf("Duplicate %s Errors", s.Rules.IdentityName),
			Findings: dupes.CrossList(loaded.Items, reference),
		})
	}

	withinFile := dupes.WithinFile
	if s.CompositeIdentity {
		withinFile = dupes.WithinFileComposite
	}
	report.Sections = append(report.Sections,
		Section{
			Title:    fmt.Sprintf("Duplicate %ss Within Uploaded File", s.Rules.IdentityName),
			Findings: withinFile(loaded.Items),
		},
		Section{
			Title:    "Duplicate Barcode Errors",
			Findings: dupes.SharedBarcodes(loaded.Items),
		},
		Section{
			Title:    "Field Length Errors",
			Findings: lengthFindings(loaded.Items, s.Rules),
		},
		Section{
			Title:    "Unusable Character Errors",
			Findings: validate.BadCharacters(loaded.Items),
		},
		Section{
			Title:    "Decimal Formatting Errors",
			Findings: validate.DecimalPlaces(loaded.Items),
		},
	)

	if opts.AutoFix {
		fixed, changes := fix.Run(tbl, s, columns)
		report.Fixed = &fixed
		report.FixChanges = changes
	}

	return report, nil
}

func lengthFindings(items []item.Item, rules schema.Rules) []item.Finding {
	findings := make([]item.Finding, 0)
	findings = append(findings, validate.IdentityLengths(items, rules)...)
	findings = append(findings, validate.ColourLengths(items, rules)...)
	findings = append(findings, validate.DescriptionLengths(items, rules)...)
	return findings
}

// loadReference pulls the identity column from the active list. The header
// row is located the same way as the upload's, but only the identity aliases
// score; a reference file without a recognizable identity column is fatal.
func loadReference(path string, s schema.Schema) ([]string, error) {
	reader, err := table.ReaderForPath(path, "")
	if err != nil {
		return nil, err
	}
	grid, err := reader.ReadGrid(path)
	if err != nil {
		return nil, fmt.Errorf("read reference list: %w", err)
	}

	aliases := s.IdentityAliases()
	headerRow := resolve.DetectHeaderRow(grid, aliases, 0)
	tbl := table.FromGrid(path, grid, headerRow)

	column, status, _ := resolve.FindColumn(tbl.Columns, aliases)
	if status == resolve.StatusMissing {
		return nil, fmt.Errorf("identity column %q not found in reference list %s", aliases[0], path)
	}
	return tbl.Column(column), nil
}
