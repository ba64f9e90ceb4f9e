package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"crateaudit/diagnostics"
)

// Help annotations with this prefix only point at the rule documentation,
// which the catalog link already covers.
const boilerplateHelpPrefix = "for further information"

// The rule namespace for which a browsable catalog exists.
const catalogCodePrefix = "clippy::"

// BuildDiagnostics converts filtered, sorted diagnostics into report findings.
// It decides what is shown: the severity label, the catalog link for known
// rule codes, the non-boilerplate help hints, and a clickable reference to
// the first span. The result depends only on the input slice, catalogURL and
// workDir.
func BuildDiagnostics(sorted []*diagnostics.Diagnostic, catalogURL string, workDir string) []Finding {
	findings := make([]Finding, 0, len(sorted))
	for _, d := range sorted {
		finding := Finding{
			Kind:       KindDiagnostic,
			Severity:   severityOf(d),
			Label:      d.Level,
			Code:       d.Code,
			CatalogURL: catalogLink(catalogURL, d.Code),
			Message:    d.Message,
		}
		for _, child := range d.Children {
			if child.Level != "help" {
				continue
			}
			if strings.HasPrefix(child.Message, boilerplateHelpPrefix) {
				continue
			}
			finding.Help = append(finding.Help, child.Message)
		}
		if len(d.Spans) > 0 {
			first := d.Spans[0]
			finding.Location = &Location{
				Path:    first.FileName,
				Line:    first.LineStart,
				Column:  first.ColumnStart,
				FileURL: fmt.Sprintf("file://%s:%d:%d", filepath.Join(workDir, first.FileName), first.LineStart, first.ColumnStart),
			}
			finding.Snippet = first.Text
		}
		findings = append(findings, finding)
	}
	return findings
}

// ParseError reports a stream line that could not be decoded, verbatim.
func ParseError(line string, err error) Finding {
	return Finding{
		Kind:     KindParseError,
		Severity: SeverityError,
		Label:    "error",
		Message:  fmt.Sprintf("%v: %s", err, line),
	}
}

func severityOf(d *diagnostics.Diagnostic) Severity {
	switch d.Severity() {
	case diagnostics.SeverityWarning:
		return SeverityWarning
	case diagnostics.SeverityError:
		return SeverityError
	}
	return SeverityOther
}

// catalogLink builds the reference URL for codes belonging to the browsable
// rule catalog. Codes outside the catalog namespace render undecorated.
func catalogLink(catalogURL, code string) string {
	if catalogURL == "" || !strings.HasPrefix(code, catalogCodePrefix) {
		return ""
	}
	return catalogURL + strings.TrimPrefix(code, catalogCodePrefix)
}
