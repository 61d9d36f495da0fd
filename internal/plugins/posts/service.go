package posts

import (
	"context"
	"log/slog"
	"time"

	"github.com/eamonvale/inkpost/internal/apperror"
	"github.com/eamonvale/inkpost/internal/plugins/auth"
)

// PostService defines the business logic contract for posts. Mutating
// methods take the requesting identity and apply the ownership gate before
// touching the repository. A denied mutation fails with the same NotFound
// error as a missing post, so non-owners can't probe for post ids.
type PostService interface {
	Create(ctx context.Context, identity *auth.Identity, title, body string) (*Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	GetOwned(ctx context.Context, identity *auth.Identity, id int64) (*Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]Post, error)
	Update(ctx context.Context, identity *auth.Identity, id int64, title, body string) (*Post, error)
	Delete(ctx context.Context, identity *auth.Identity, id int64) error
}

// errPostNotFound is returned for both a genuinely absent post and a denied
// mutation. One value, so the two cases stay indistinguishable.
var errPostNotFound = apperror.NewNotFound("post not found")

// postService implements PostService.
type postService struct {
	repo PostRepository
}

// NewPostService creates a new post service backed by the given repository.
func NewPostService(repo PostRepository) PostService {
	return &postService{repo: repo}
}

// Create persists a new post owned by the requesting identity. Inputs are
// assumed to have passed ValidatePost.
func (s *postService) Create(ctx context.Context, identity *auth.Identity, title, body string) (*Post, error) {
	if identity == nil {
		return nil, errPostNotFound
	}

	post := &Post{
		Title:     title,
		Body:      body,
		AuthorID:  identity.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, apperror.NewInternal(err)
	}

	slog.Info("post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID),
	)

	return post, nil
}

// Get retrieves a post for display. Viewing is allowed for anyone.
func (s *postService) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.FindByID(ctx, id)
}

// GetOwned retrieves a post for editing: the post must exist AND belong to
// the identity, otherwise NotFound.
func (s *postService) GetOwned(ctx context.Context, identity *auth.Identity, id int64) (*Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !Authorize(identity, post) {
		return nil, errPostNotFound
	}
	return post, nil
}

// ListByAuthor returns an author's posts, newest first. The ordering comes
// from the repository query and is re-run on every call.
func (s *postService) ListByAuthor(ctx context.Context, authorID int64) ([]Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// Update overwrites a post's title and body after the ownership check.
func (s *postService) Update(ctx context.Context, identity *auth.Identity, id int64, title, body string) (*Post, error) {
	post, err := s.GetOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, post.ID, title, body); err != nil {
		return nil, err
	}

	post.Title = title
	post.Body = body
	return post, nil
}

// Delete removes a post after the ownership check.
func (s *postService) Delete(ctx context.Context, identity *auth.Identity, id int64) error {
	post, err := s.GetOwned(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return err
	}

	slog.Info("post deleted",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID),
	)
	return nil
}
