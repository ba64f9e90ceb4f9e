package diagnostics

import (
	"strings"

	"crateaudit/config"
)

// IsSuppressed decides whether a diagnostic should be hidden from the report.
// Diagnostics without a code are always hidden: only recognized lint rules are
// reported. A diagnostic carrying a code is hidden when the source text of
// any of its spans contains the marker of any applicable rule. A diagnostic
// without spans can never match a marker and stays visible.
func IsSuppressed(d *Diagnostic, rules []config.SuppressionRule) bool {
	if d.Code == "" {
		return true
	}
	for i := range rules {
		if !rules[i].AppliesTo(d.Code) {
			continue
		}
		for _, span := range d.Spans {
			if span.Text != "" && strings.Contains(span.Text, rules[i].Marker) {
				return true
			}
		}
	}
	return false
}
