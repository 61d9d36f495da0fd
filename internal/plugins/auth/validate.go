package auth

import (
	"regexp"
	"strings"
)

// Username and password bounds. The username ceiling is six characters
// so usernames fit the dashboard layout without truncation.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 6
	PasswordMinLen = 6
)

// usernameRe restricts usernames to ASCII letters and digits.
var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// loginErrorMessage is the single message returned for every login
// validation failure. Which field was wrong is deliberately not revealed.
const loginErrorMessage = "Invalid username / password"

// ValidateRegistration normalizes and checks a registration submission.
// It returns the trimmed username and password along with the list of
// field-level errors; an empty list means the input is acceptable.
func ValidateRegistration(username, password string) (string, string, []string) {
	var errs []string

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" {
		errs = append(errs, "You must provide a username.")
	}
	if username != "" && len(username) < UsernameMinLen {
		errs = append(errs, "Username must be at least three characters.")
	}
	if username != "" && len(username) > UsernameMaxLen {
		errs = append(errs, "Username can't exceed six characters.")
	}
	if username != "" && !usernameRe.MatchString(username) {
		errs = append(errs, "Username may only contain letters and numbers.")
	}

	if password == "" {
		errs = append(errs, "You must provide a password.")
	}
	if password != "" && len(password) < PasswordMinLen {
		errs = append(errs, "Password must be at least six characters.")
	}

	return username, password, errs
}

// ValidateLogin checks that both login fields are present. Any failure
// yields the same generic message regardless of which field was missing.
func ValidateLogin(username, password string) (string, string, []string) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return username, password, []string{loginErrorMessage}
	}
	return username, password, nil
}
