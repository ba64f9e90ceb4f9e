// Package report holds the unit of audit output. Both pipelines reduce their
// input to an ordered slice of findings; everything after that point is
// formatting.

package report

import "fmt"

// Kind discriminates the closed set of finding variants.
type Kind uint

const (
	// A linter diagnostic that survived suppression.
	KindDiagnostic Kind = iota
	// A stream line that could not be decoded.
	KindParseError
	// A missing recommended manifest field.
	KindAdvisory
	// An informational line, e.g. a manifest field that is present.
	KindInfo
	// A pinned dependency pointing at a stale branch.
	KindStale
	// A failure that ended one pipeline, e.g. an undecodable manifest.
	KindError
)

// Severity is the display class a finding is rendered with.
type Severity uint

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityOther
)

// Location points into the audited workspace.
type Location struct {
	Path   string
	Line   int
	Column int
	// FileURL is the hyperlink target for the location, if one was built.
	FileURL string
}

// Ref renders the location relative to the workspace root.
func (l *Location) Ref() string {
	return fmt.Sprintf("./%s:%d:%d", l.Path, l.Line, l.Column)
}

// Finding is one line of the audit report.
type Finding struct {
	Kind     Kind
	Severity Severity
	// Label is the severity text shown to the user, e.g. "warning". Empty
	// for purely informational lines.
	Label string
	// Code is the lint rule that fired, when the finding has one.
	Code string
	// CatalogURL links the code to a browsable rule catalog, when known.
	CatalogURL string
	Message    string
	// Help carries actionable hints attached to a diagnostic.
	Help     []string
	Location *Location
	// Snippet is the literal source text of the first span, used for
	// highlighted output.
	Snippet string
}
