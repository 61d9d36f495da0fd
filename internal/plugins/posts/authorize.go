package posts

import (
	"github.com/eamonvale/inkpost/internal/plugins/auth"
)

// Authorize decides whether an identity may mutate a post: allowed iff the
// request is authenticated and the identity owns the post. Anonymous
// requests are always denied. This is the only place the ownership rule is
// written down; the same equality also feeds the single-post view's
// IsAuthor flag, where it gates nothing but the edit controls.
func Authorize(identity *auth.Identity, post *Post) bool {
	return identity != nil && identity.UserID == post.AuthorID
}
