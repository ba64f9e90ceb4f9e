// Parses the linter's JSON-line stream. The stream interleaves several record
// kinds; only "compiler-message" records carry a diagnostic, the rest (build
// status, artifact notifications) are skipped.

package diagnostics

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

/// Internal types mirroring the cargo message stream

type jsonText struct {
	Text string `json:"text"`
}

type jsonSpan struct {
	FileName    string     `json:"file_name"`
	LineStart   int        `json:"line_start"`
	ColumnStart int        `json:"column_start"`
	LineEnd     int        `json:"line_end"`
	ColumnEnd   int        `json:"column_end"`
	Text        []jsonText `json:"text"`
}

type jsonCode struct {
	Code string `json:"code"`
}

type jsonMessage struct {
	Code     *jsonCode     `json:"code"`
	Level    string        `json:"level"`
	Message  string        `json:"message"`
	Spans    []jsonSpan    `json:"spans"`
	Children []jsonMessage `json:"children"`
}

type jsonRecord struct {
	Reason  string       `json:"reason"`
	Message *jsonMessage `json:"message"`
}

// ParseLine decodes a single stream line. It returns nil for well-formed
// records which carry no diagnostic, and an error for lines that are not
// valid records at all; the caller reports those verbatim and moves on.
func ParseLine(line string) (*Diagnostic, error) {
	var record jsonRecord
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		return nil, errors.Wrap(err, "decoding stream record")
	}
	if record.Reason != "compiler-message" || record.Message == nil {
		return nil, nil
	}
	return convertMessage(record.Message), nil
}

func convertMessage(message *jsonMessage) *Diagnostic {
	diagnostic := Diagnostic{
		Level:   message.Level,
		Message: message.Message,
	}
	if message.Code != nil {
		diagnostic.Code = message.Code.Code
	}
	for _, span := range message.Spans {
		var text strings.Builder
		for _, line := range span.Text {
			text.WriteString(line.Text)
		}
		diagnostic.Spans = append(diagnostic.Spans, Span{
			FileName:    span.FileName,
			LineStart:   span.LineStart,
			ColumnStart: span.ColumnStart,
			LineEnd:     span.LineEnd,
			ColumnEnd:   span.ColumnEnd,
			Text:        text.String(),
		})
	}
	for _, child := range message.Children {
		diagnostic.Children = append(diagnostic.Children, Annotation{
			Level:   child.Level,
			Message: child.Message,
		})
	}
	return &diagnostic
}
