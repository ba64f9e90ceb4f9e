package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crateaudit/config"
)

func spanWithText(text string) Span {
	return Span{FileName: "src/lib.rs", LineStart: 1, ColumnStart: 1, Text: text}
}

func TestSuppress_UnscopedMarker(t *testing.T) {
	rules := []config.SuppressionRule{{Marker: "#[derive("}}

	d := &Diagnostic{
		Code:  "clippy::too_many_lines",
		Spans: []Span{spanWithText("#[derive(Clone, Debug)]")},
	}
	assert.True(t, IsSuppressed(d, rules))

	clean := &Diagnostic{
		Code:  "clippy::too_many_lines",
		Spans: []Span{spanWithText("fn main() {}")},
	}
	assert.False(t, IsSuppressed(clean, rules))
}

func TestSuppress_CodeScopedMarker(t *testing.T) {
	rules := []config.SuppressionRule{{
		Marker: "construct_runtime!",
		Codes:  map[string]bool{"clippy::too_many_lines": true},
	}}

	inScope := &Diagnostic{
		Code:  "clippy::too_many_lines",
		Spans: []Span{spanWithText("construct_runtime!(pub enum Runtime {})")},
	}
	assert.True(t, IsSuppressed(inScope, rules))

	// Same marker hit, but the rule does not apply to this code.
	outOfScope := &Diagnostic{
		Code:  "clippy::unwrap_used",
		Spans: []Span{spanWithText("construct_runtime!(pub enum Runtime {})")},
	}
	assert.False(t, IsSuppressed(outOfScope, rules))
}

func TestSuppress_AnySpanMatches(t *testing.T) {
	rules := []config.SuppressionRule{{Marker: "decl_storage!"}}

	spans := []Span{
		spanWithText("fn helper() {}"),
		spanWithText("decl_storage! { trait Store }"),
		spanWithText("fn main() {}"),
	}
	d := &Diagnostic{Code: "clippy::indexing_slicing", Spans: spans}
	assert.True(t, IsSuppressed(d, rules))

	// The decision is independent of span order.
	reversed := &Diagnostic{
		Code:  "clippy::indexing_slicing",
		Spans: []Span{spans[2], spans[1], spans[0]},
	}
	assert.True(t, IsSuppressed(reversed, rules))
}

func TestSuppress_NoSpans(t *testing.T) {
	rules := []config.SuppressionRule{{Marker: "anything"}}

	d := &Diagnostic{Code: "clippy::unwrap_used"}
	assert.False(t, IsSuppressed(d, rules))
}

func TestSuppress_SpanWithoutText(t *testing.T) {
	rules := []config.SuppressionRule{{Marker: "#[derive("}}

	// Missing span text degrades suppression to a no-op for that span.
	d := &Diagnostic{
		Code:  "clippy::unwrap_used",
		Spans: []Span{{FileName: "src/lib.rs", LineStart: 3, ColumnStart: 1}},
	}
	assert.False(t, IsSuppressed(d, rules))
}

func TestSuppress_NoCode(t *testing.T) {
	// Diagnostics without a recognized code are never shown, spans or not.
	assert.True(t, IsSuppressed(&Diagnostic{Message: "aborting"}, nil))
	assert.True(t, IsSuppressed(&Diagnostic{
		Message: "aborting",
		Spans:   []Span{spanWithText("fn main() {}")},
	}, nil))
}
