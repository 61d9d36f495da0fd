package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid. Expiry is
// embedded in the signed payload, so no server-side store is needed;
// the accepted tradeoff is that logout cannot revoke a token early.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is the single failure value for token verification.
// Bad signature, malformed payload, and expiry all collapse into it --
// callers must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid or expired session token")

// sessionClaims is the JWT payload for a session token.
type sessionClaims struct {
	UserID   int64  `json:"userid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies signed session tokens. It holds no state
// beyond the signing secret loaded at startup; Issue and Verify are a pure
// function pair.
type TokenCodec struct {
	secret []byte

	// now is stubbed in tests to control expiry.
	now func() time.Time
}

// NewTokenCodec creates a codec signing with the given secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue produces a signed token embedding the user's id and username with
// an expiry of now + TokenTTL.
func (tc *TokenCodec) Issue(userID int64, username string) (string, error) {
	now := tc.now()
	claims := sessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Verify checks a token's signature and expiry and returns the identity it
// carries. Every failure mode returns ErrInvalidToken.
func (tc *TokenCodec) Verify(tokenString string) (*Identity, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return tc.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tc.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:    claims.UserID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
