package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eamonvale/inkpost/internal/apperror"
)

// UserRepository defines the data access contract for user operations.
// All SQL lives in the concrete implementation -- no SQL leaks out.
type UserRepository interface {
	// Create inserts a new user and fills in the generated id.
	Create(ctx context.Context, user *User) error

	// FindByUsername retrieves a user by exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// UsernameExists reports whether a username is already taken.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// userRepository implements UserRepository with hand-written MariaDB queries.
// The username column uses a binary collation, so lookups here are
// case-sensitive exact matches.
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository backed by the given DB pool.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user row and stores the auto-increment id on user.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new user id: %w", err)
	}
	user.ID = id

	return nil
}

// FindByUsername retrieves a user by their username.
// Returns apperror.NotFound if no user exists with this username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by username: %w", err)
	}

	return user, nil
}

// UsernameExists returns true if a user with the given username already
// exists. Used during registration to check for duplicates before hashing
// the password.
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking username existence: %w", err)
	}

	return exists, nil
}
