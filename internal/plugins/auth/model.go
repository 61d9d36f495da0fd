// Package auth handles user registration, login, and session identity for
// inkpost. Sessions are stateless: a signed token in the session cookie
// carries the identity claims, and verification needs nothing but the
// process-wide signing secret.
//
// This is a CORE plugin -- always enabled, cannot be disabled.
package auth

import "time"

// User represents a registered inkpost user. User records are created once
// at registration and never mutated or deleted afterwards.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON responses.
}

// Identity is the authenticated identity derived from a verified session
// token. It is constructed fresh on every request and never stored
// server-side; its lifetime is bounded by the token expiry.
type Identity struct {
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// --- Request DTOs (bound from HTTP forms) ---

// RegisterRequest holds the data submitted by the registration form.
type RegisterRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginRequest holds the data submitted by the login form.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
