package item

// Finding is one non-fatal validation result. Line is the record's origin
// line in the uploaded file. RefIndex is only set by the cross-list duplicate
// check and holds the 0-based position of the first occurrence in the active
// reference list; -1 everywhere else. The two are deliberately separate
// fields because they count different things.
type Finding struct {
	Line     int
	RefIndex int
	Message  string
}

// NewFinding builds a finding for an upload record.
func NewFinding(line int, message string) Finding {
	return Finding{Line: line, RefIndex: -1, Message: message}
}

// Messages flattens findings to their display strings.
func Messages(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}
