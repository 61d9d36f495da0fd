// Package posts implements post authoring for inkpost: creation, editing,
// deletion, and display of markdown posts. Every post belongs to exactly one
// user; only that owner may change or remove it. The repository itself is a
// dumb persistence boundary -- the ownership rule lives in authorize.go and
// is applied by the service before any mutating call.
package posts

import "time"

// Post represents a single authored post. AuthorID and CreatedAt are fixed
// at creation; edits touch title and body only. JSON tags exist for the
// Redis cache encoding, not for any API surface.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	// AuthorName is joined in for display on the single-post view.
	// Not a column on the posts table.
	AuthorName string `json:"author_name,omitempty"`
}

// PostForm holds the data submitted by the create and edit forms.
type PostForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}
