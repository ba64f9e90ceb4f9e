package diagnostics

// SeverityClass is the three-way display class of a diagnostic level.
type SeverityClass uint

const (
	SeverityWarning SeverityClass = iota
	SeverityError
	SeverityOther
)

// A source span covered by a diagnostic. Text carries the literal source
// content the span covers, which is what suppression rules match against.
// It is empty when the linter omits the rendered text.
type Span struct {
	FileName    string
	LineStart   int
	ColumnStart int
	LineEnd     int
	ColumnEnd   int
	Text        string
}

// A child note attached to a diagnostic, e.g. a "help" or "note" hint.
type Annotation struct {
	Level   string
	Message string
}

// Diagnostic is one issue reported by the linter. Constructed once per parsed
// stream line and immutable afterwards.
type Diagnostic struct {
	// The raw level string as reported, e.g. "warning" or "error".
	Level string
	// The lint rule code, empty when the record carries none.
	Code     string
	Message  string
	Spans    []Span
	Children []Annotation
}

// Severity maps the raw level onto the display class.
func (d *Diagnostic) Severity() SeverityClass {
	switch d.Level {
	case "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	}
	return SeverityOther
}
