package auth

import (
	"testing"
)

func TestValidateRegistration_AcceptsValidInput(t *testing.T) {
	username, password, errs := ValidateRegistration("  abc12  ", "  secret9  ")
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if username != "abc12" {
		t.Errorf("expected trimmed username %q, got %q", "abc12", username)
	}
	if password != "secret9" {
		t.Errorf("expected trimmed password %q, got %q", "secret9", password)
	}
}

func TestValidateRegistration_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  string
	}{
		{"username too short", "ab", "secret9", "Username must be at least three characters."},
		{"username too long", "abcdefg", "secret9", "Username can't exceed six characters."},
		{"username bad charset", "ab!", "secret9", "Username may only contain letters and numbers."},
		{"username missing", "", "secret9", "You must provide a username."},
		{"username whitespace only", "   ", "secret9", "You must provide a username."},
		{"password too short", "abc12", "12345", "Password must be at least six characters."},
		{"password missing", "abc12", "", "You must provide a password."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, errs := ValidateRegistration(tt.username, tt.password)
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, e := range errs {
				if e == tt.wantErr {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error %q in %v", tt.wantErr, errs)
			}
		})
	}
}

func TestValidateRegistration_BoundaryLengths(t *testing.T) {
	if _, _, errs := ValidateRegistration("abc", "123456"); len(errs) != 0 {
		t.Errorf("3-char username / 6-char password should pass, got %v", errs)
	}
	if _, _, errs := ValidateRegistration("abcdef", "123456"); len(errs) != 0 {
		t.Errorf("6-char username should pass, got %v", errs)
	}
}

// A missing username and a missing password must produce the exact same
// message, so the form can't be used to learn which field was wrong.
func TestValidateLogin_UniformError(t *testing.T) {
	_, _, noUser := ValidateLogin("", "secret9")
	_, _, noPass := ValidateLogin("abc12", "")
	_, _, neither := ValidateLogin("   ", "")

	for _, errs := range [][]string{noUser, noPass, neither} {
		if len(errs) != 1 {
			t.Fatalf("expected exactly one error, got %v", errs)
		}
		if errs[0] != loginErrorMessage {
			t.Errorf("expected %q, got %q", loginErrorMessage, errs[0])
		}
	}
}

func TestValidateLogin_AcceptsPresence(t *testing.T) {
	username, _, errs := ValidateLogin("  abc12  ", "anything")
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if username != "abc12" {
		t.Errorf("expected trimmed username, got %q", username)
	}
}
