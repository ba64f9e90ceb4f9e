package diagnostics

import "sort"

// sortKey is the location of a diagnostic's first span. Diagnostics without
// spans get the zero key, which orders them before every located diagnostic.
func sortKey(d *Diagnostic) (file string, line int, column int) {
	if len(d.Spans) == 0 {
		return "", 0, 0
	}
	return d.Spans[0].FileName, d.Spans[0].LineStart, d.Spans[0].ColumnStart
}

// SortByLocation orders diagnostics for display: by file path, then starting
// line, then starting column. Diagnostics with identical keys keep their
// input order.
func SortByLocation(diagnostics []*Diagnostic) {
	sort.SliceStable(diagnostics, func(i, j int) bool {
		fileI, lineI, columnI := sortKey(diagnostics[i])
		fileJ, lineJ, columnJ := sortKey(diagnostics[j])
		if fileI != fileJ {
			return fileI < fileJ
		}
		if lineI != lineJ {
			return lineI < lineJ
		}
		return columnI < columnJ
	})
}
