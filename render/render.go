// Package render turns findings into terminal output. All decisions about
// what to show were taken upstream; this layer only deals in color, links
// and escape sequences.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"crateaudit/report"
)

var (
	warningLabel = color.New(color.FgYellow)
	errorLabel   = color.New(color.FgRed)
	locationText = color.New(color.FgCyan)
	helpLabel    = color.New(color.Bold)
)

type Renderer struct {
	Out io.Writer
	// Snippets enables highlighted source excerpts under each diagnostic.
	Snippets bool
}

func New(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

// Render writes the findings in order, one line each (plus the optional
// snippet). Rendering the same slice twice produces identical output.
func (r *Renderer) Render(findings []report.Finding) error {
	for i := range findings {
		if err := r.renderFinding(&findings[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderFinding(f *report.Finding) error {
	var line strings.Builder

	if f.Label != "" {
		line.WriteString(r.label(f))
		line.WriteByte(' ')
	}
	if f.Code != "" {
		line.WriteString(hyperlink(f.Code, f.CatalogURL))
		line.WriteByte(' ')
	}
	line.WriteString(f.Message)
	for _, help := range f.Help {
		line.WriteByte(' ')
		line.WriteString(helpLabel.Sprint("help:"))
		line.WriteByte(' ')
		line.WriteString(help)
	}
	if f.Location != nil {
		line.WriteString(" at ")
		line.WriteString(locationText.Sprint(hyperlink(f.Location.Ref(), f.Location.FileURL)))
	}
	line.WriteByte('\n')

	if _, err := io.WriteString(r.Out, line.String()); err != nil {
		return err
	}
	if r.Snippets && f.Snippet != "" {
		if err := r.renderSnippet(f.Snippet); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) label(f *report.Finding) string {
	switch f.Severity {
	case report.SeverityWarning:
		return warningLabel.Sprint(f.Label)
	case report.SeverityError:
		return errorLabel.Sprint(f.Label)
	}
	return f.Label
}

// hyperlink wraps text in an OSC 8 terminal hyperlink. Plain text is emitted
// when there is no target or when colors are disabled, which also covers
// non-tty output.
func hyperlink(text, url string) string {
	if url == "" || color.NoColor {
		return text
	}
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
}
