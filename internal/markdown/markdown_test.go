package markdown

import (
	"strings"
	"testing"
)

func TestRender_BasicMarkdown(t *testing.T) {
	got := string(Render("# Heading\n\nSome *emphasis* and **strength**."))

	for _, want := range []string{"<h1>Heading</h1>", "<em>emphasis</em>", "<strong>strength</strong>"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
}

func TestRender_Lists(t *testing.T) {
	got := string(Render("- one\n- two"))

	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>one</li>") {
		t.Errorf("expected a rendered list, got %q", got)
	}
}

// Raw HTML in the source must never reach the page as markup. goldmark
// escapes it by default; the sanitizer would drop it regardless.
func TestRender_RawHTMLNeutralized(t *testing.T) {
	got := string(Render("hello <script>alert(1)</script> world"))

	if strings.Contains(got, "<script") {
		t.Errorf("script tag survived rendering: %q", got)
	}
}

func TestRender_LinksReducedToText(t *testing.T) {
	got := string(Render("[click](https://example.com)"))

	if strings.Contains(got, "<a") {
		t.Errorf("anchor tag should be stripped by the allowlist, got %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("link text should survive, got %q", got)
	}
}

func TestRender_PlainTextParagraph(t *testing.T) {
	got := string(Render("just words"))

	if !strings.Contains(got, "<p>just words</p>") {
		t.Errorf("expected a paragraph, got %q", got)
	}
}
