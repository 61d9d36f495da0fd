package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the HTTP cookie carrying the signed session token.
const SessionCookieName = "session"

// contextKeyIdentity stores the verified *Identity in the Echo context.
// Other plugins read it via GetIdentity.
const contextKeyIdentity = "auth_identity"

// LoadIdentity returns middleware that runs on every request. It reads the
// session cookie and, if the token verifies, attaches the Identity to the
// request context. A missing or invalid token demotes the request to
// anonymous -- never an error response -- and clears the stale cookie.
//
// This is the single point where cookie trust is established; everything
// downstream trusts the attached identity without re-verifying.
func LoadIdentity(codec *TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := getSessionToken(c)
			if token == "" {
				return next(c)
			}

			identity, err := codec.Verify(token)
			if err != nil {
				ClearSessionCookie(c)
				return next(c)
			}

			c.Set(contextKeyIdentity, identity)
			return next(c)
		}
	}
}

// RequireAuth returns middleware that redirects anonymous requests to the
// homepage. Protected pages never show a "forbidden" error; to a visitor
// without a session they simply don't exist.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GetIdentity(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}

// GetIdentity retrieves the authenticated identity from the Echo context.
// Returns nil for anonymous requests.
func GetIdentity(c echo.Context) *Identity {
	identity, ok := c.Get(contextKeyIdentity).(*Identity)
	if !ok {
		return nil
	}
	return identity
}

// --- Cookie helpers ---

// getSessionToken reads the session token from the cookie.
func getSessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie sets the session cookie on the response. The cookie is
// HttpOnly (JS can't read it), Secure behind TLS, SameSite=Strict, and
// expires together with the token it carries.
func SetSessionCookie(c echo.Context, token string) {
	req := c.Request()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(TokenTTL.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie by setting MaxAge to -1.
// This is the whole of logout: the token itself stays valid until expiry.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
