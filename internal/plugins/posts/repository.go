package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eamonvale/inkpost/internal/apperror"
)

// PostRepository defines the data access contract for post operations.
// No method here checks ownership -- authorization is a separate, explicit
// gate applied by the service before Update/Delete.
type PostRepository interface {
	// Create inserts a new post and fills in the generated id.
	Create(ctx context.Context, post *Post) error

	// FindByID retrieves a post with its author's username joined in.
	FindByID(ctx context.Context, id int64) (*Post, error)

	// ListByAuthor returns an author's posts, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]Post, error)

	// Update overwrites title and body only. author_id and created_at are
	// immutable after creation.
	Update(ctx context.Context, id int64, title, body string) error

	// Delete removes a post.
	Delete(ctx context.Context, id int64) error
}

// listByAuthorQuery orders the dashboard listing. The ordering clause is
// load-bearing: newest posts first, id as tiebreak for same-second inserts.
const listByAuthorQuery = `SELECT id, title, body, author_id, created_at
	FROM posts WHERE author_id = ?
	ORDER BY created_at DESC, id DESC`

// postRepository implements PostRepository with hand-written MariaDB queries.
type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository backed by the given DB pool.
func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post row and stores the auto-increment id on post.
func (r *postRepository) Create(ctx context.Context, post *Post) error {
	query := `INSERT INTO posts (title, body, author_id, created_at)
	          VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Body, post.AuthorID, post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new post id: %w", err)
	}
	post.ID = id

	return nil
}

// FindByID retrieves a post by id, joining the author's username for display.
// Returns apperror.NotFound if no post exists with this id.
func (r *postRepository) FindByID(ctx context.Context, id int64) (*Post, error) {
	query := `SELECT p.id, p.title, p.body, p.author_id, p.created_at, u.username
	          FROM posts p
	          INNER JOIN users u ON p.author_id = u.id
	          WHERE p.id = ?`

	post := &Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Body,
		&post.AuthorID,
		&post.CreatedAt,
		&post.AuthorName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying post by id: %w", err)
	}

	return post, nil
}

// ListByAuthor returns all posts by one author, newest first.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID int64) ([]Post, error) {
	rows, err := r.db.QueryContext(ctx, listByAuthorQuery, authorID)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning post row: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update overwrites a post's title and body.
// Returns apperror.NotFound if no row matched. The connection runs with
// clientFoundRows, so RowsAffected counts matched rows and a save that
// changes nothing is still a match, not a NotFound.
func (r *postRepository) Update(ctx context.Context, id int64, title, body string) error {
	query := `UPDATE posts SET title = ?, body = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, title, body, id)
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperror.NewNotFound("post not found")
	}
	return nil
}

// Delete removes a post row.
// Returns apperror.NotFound if no row matched.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperror.NewNotFound("post not found")
	}
	return nil
}
