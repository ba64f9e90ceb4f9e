package manifest

import (
	"fmt"
	"net/url"
	"strings"

	"crateaudit/config"
	"crateaudit/report"
)

// CheckStaleness audits one package's pinned dependencies against the
// staleness policy. Only dependencies whose source carries the configured
// ecosystem prefix are in scope; the rest are silently skipped. Every
// `branch` query parameter whose value is not in the current-tag set yields
// one warning. A source that matches the prefix but is not a parseable URL
// yields one error finding for that dependency and the scan moves on.
func CheckStaleness(pkg Package, policy config.StalenessPolicy) []report.Finding {
	var findings []report.Finding
	for _, dependency := range pkg.Dependencies {
		if !strings.HasPrefix(dependency.Source, policy.SourcePrefix) {
			continue
		}
		// The "git+" part is a source-kind tag, not part of the URL proper.
		parsed, err := url.Parse(strings.TrimPrefix(dependency.Source, "git+"))
		if err != nil {
			findings = append(findings, report.Finding{
				Kind:     report.KindError,
				Severity: report.SeverityError,
				Label:    "error",
				Message:  fmt.Sprintf("could not parse source of '%s': %v", dependency.Name, err),
			})
			continue
		}
		for _, branch := range parsed.Query()["branch"] {
			if policy.CurrentTags[branch] {
				continue
			}
			findings = append(findings, report.Finding{
				Kind:     report.KindStale,
				Severity: report.SeverityWarning,
				Label:    "warning",
				Message:  fmt.Sprintf("%s for '%s' is out of date", branch, dependency.Name),
			})
		}
	}
	return findings
}
