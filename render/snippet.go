package render

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/quick"
	"github.com/fatih/color"
)

const snippetIndent = "    "

// renderSnippet prints the source excerpt a diagnostic covers, syntax
// highlighted when colors are on. Highlighting failures fall back to the
// plain text rather than losing the excerpt.
func (r *Renderer) renderSnippet(snippet string) error {
	var rendered string
	if color.NoColor {
		rendered = snippet
	} else {
		var highlighted strings.Builder
		if err := quick.Highlight(&highlighted, snippet, "rust", "terminal256", "monokai"); err != nil {
			rendered = snippet
		} else {
			rendered = highlighted.String()
		}
	}

	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		if _, err := io.WriteString(r.Out, snippetIndent+line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
