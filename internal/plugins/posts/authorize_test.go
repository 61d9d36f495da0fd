package posts

import (
	"testing"

	"github.com/eamonvale/inkpost/internal/plugins/auth"
)

func TestAuthorize(t *testing.T) {
	post := &Post{ID: 1, AuthorID: 7}

	tests := []struct {
		name     string
		identity *auth.Identity
		want     bool
	}{
		{"owner", &auth.Identity{UserID: 7, Username: "abc"}, true},
		{"other user", &auth.Identity{UserID: 8, Username: "def"}, false},
		{"anonymous", nil, false},
		{"zero-value identity", &auth.Identity{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.identity, post); got != tt.want {
				t.Errorf("Authorize() = %v, want %v", got, tt.want)
			}
		})
	}
}
