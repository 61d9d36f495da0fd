// Package markdown converts stored post bodies to safe HTML for display.
// Conversion uses goldmark; the output is then reduced to the sanitize
// package's rendered-element allowlist, so the templates can embed it raw.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/eamonvale/inkpost/internal/sanitize"
)

// converter is the shared goldmark instance. Raw HTML passthrough stays
// disabled (the default), so markup in the source is escaped rather than
// emitted -- sanitize.Render is the second line of defense, not the first.
var converter = goldmark.New()

// Render converts markdown source to sanitized HTML. On conversion failure
// the body is treated as plain text and HTML-escaped.
func Render(src string) template.HTML {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(sanitize.Render(buf.String()))
}
