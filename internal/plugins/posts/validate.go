package posts

import (
	"github.com/eamonvale/inkpost/internal/sanitize"
)

// ValidatePost normalizes a post submission. Both fields are stripped of
// every HTML tag and trimmed before the emptiness check, so a title that
// was nothing but markup is rejected the same as a blank one. The returned
// values are what gets stored.
func ValidatePost(title, body string) (string, string, []string) {
	var errs []string

	title = sanitize.Strip(title)
	body = sanitize.Strip(body)

	if title == "" {
		errs = append(errs, "You must provide a title.")
	}
	if body == "" {
		errs = append(errs, "You must provide content.")
	}

	return title, body, errs
}
