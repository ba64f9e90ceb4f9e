package manifest

import (
	"fmt"
	"strings"

	"crateaudit/config"
	"crateaudit/report"
)

// CheckCompleteness audits one package for missing recommended fields. Every
// enabled check produces exactly one finding: an advisory when the field is
// absent, an informational line with the value when it is present. The check
// order is fixed so reports are deterministic.
func CheckCompleteness(pkg Package, checks map[config.FieldCheck]bool) []report.Finding {
	var findings []report.Finding

	if checks[config.CheckAuthors] {
		if len(pkg.Authors) == 0 {
			findings = append(findings, missingField(pkg, "authors"))
		} else {
			findings = append(findings, presentField("authors", strings.Join(pkg.Authors, ", ")))
		}
	}

	if checks[config.CheckDescription] {
		if pkg.Description == "" {
			findings = append(findings, missingField(pkg, "description"))
		} else {
			findings = append(findings, presentField("description", pkg.Description))
		}
	}

	if checks[config.CheckLicense] {
		switch {
		case pkg.License != "":
			findings = append(findings, presentField("license", pkg.License))
		case pkg.LicenseFile != "":
			// A license file satisfies the check even without an SPDX string.
			findings = append(findings, presentField("license-file", pkg.LicenseFile))
		default:
			findings = append(findings, missingField(pkg, "license"))
		}
	}

	if checks[config.CheckRepository] {
		if pkg.Repository == "" {
			findings = append(findings, missingField(pkg, "repository"))
		} else {
			findings = append(findings, presentField("repository", pkg.Repository))
		}
	}

	return findings
}

func missingField(pkg Package, field string) report.Finding {
	return report.Finding{
		Kind:     report.KindAdvisory,
		Severity: report.SeverityWarning,
		Label:    "warning",
		Message:  fmt.Sprintf("no '%s' found in %s", field, pkg.Name),
	}
}

func presentField(field, value string) report.Finding {
	return report.Finding{
		Kind:     report.KindInfo,
		Severity: report.SeverityInfo,
		Message:  fmt.Sprintf("%s: %s", field, value),
	}
}

// PackageHeader introduces a package's findings in the report.
func PackageHeader(pkg Package) report.Finding {
	return report.Finding{
		Kind:     report.KindInfo,
		Severity: report.SeverityInfo,
		Message:  fmt.Sprintf("%s %s (%s)", pkg.Name, pkg.Version, pkg.ManifestPath),
	}
}
