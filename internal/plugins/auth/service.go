package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/eamonvale/inkpost/internal/apperror"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 10

// ErrInvalidCredentials is returned for every authentication failure.
// A wrong password and an unknown username produce this exact value, so
// the login form can never be used to enumerate usernames.
var ErrInvalidCredentials = apperror.NewUnauthorized(loginErrorMessage)

// ErrUsernameTaken is returned when registration collides with an existing
// username.
var ErrUsernameTaken = apperror.NewConflict("This username is already taken.")

// AuthService defines the business logic contract for authentication.
// Handlers call these methods -- they never touch the repository directly.
// Inputs are assumed to have passed ValidateRegistration / ValidateLogin.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// UsernameTaken reports whether a username is already registered, so the
	// form can show the collision together with field validation errors.
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// authService implements AuthService with bcrypt hashing.
type authService struct {
	repo UserRepository
}

// NewAuthService creates a new auth service backed by the given repository.
func NewAuthService(repo UserRepository) AuthService {
	return &authService{repo: repo}
}

// Register creates a new user account. It checks uniqueness, hashes the
// password with bcrypt, and persists the user. The returned User carries
// the database-generated id.
func (s *authService) Register(ctx context.Context, username, password string) (*User, error) {
	// Check the username before doing expensive hashing.
	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("checking username: %w", err))
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	user := &User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	slog.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// UsernameTaken reports whether the username is already registered.
func (s *authService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return false, apperror.NewInternal(fmt.Errorf("checking username: %w", err))
	}
	return exists, nil
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password fail with the identical ErrInvalidCredentials value.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	slog.Info("user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}
