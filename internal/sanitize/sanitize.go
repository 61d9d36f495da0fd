// Package sanitize provides HTML sanitization for user-generated content.
// Uses bluemonday in two modes: Strip removes every tag and attribute before
// anything is stored, and Render allows only a fixed set of structural and
// emphasis tags in markup-rendered output.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Policies are singletons initialized once via sync.Once for thread-safe
// lazy initialization.
var (
	stripPolicy  *bluemonday.Policy
	renderPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

// renderedElements is the full allowlist for rendered post bodies:
// paragraphs, line breaks, lists, headings, and emphasis. No attributes are
// allowed on any of them, so stored markup can never carry executable
// content into a page.
var renderedElements = []string{
	"p", "br", "ul", "ol", "li",
	"strong", "b", "i", "em",
	"h1", "h2", "h3", "h4", "h5", "h6",
}

func initPolicies() {
	policyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()

		renderPolicy = bluemonday.NewPolicy()
		renderPolicy.AllowElements(renderedElements...)
	})
}

// Strip removes all HTML tags and attributes from user input, leaving only
// text content. Script and style element contents are dropped entirely.
//
// This MUST be called on every free-text field (titles, bodies) before it
// is stored in the database.
func Strip(input string) string {
	if input == "" {
		return ""
	}
	initPolicies()
	return strings.TrimSpace(stripPolicy.Sanitize(input))
}

// Render sanitizes already-rendered HTML (markup converter output) down to
// the fixed structural/emphasis allowlist with no attributes. The result is
// the only HTML ever handed to the page templates for raw rendering.
func Render(html string) string {
	if html == "" {
		return ""
	}
	initPolicies()
	return renderPolicy.Sanitize(html)
}
