package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eamonvale/inkpost/internal/apperror"
)

// Handler handles HTTP requests for authentication (login, register, logout).
// Handlers are thin: they bind the form, validate, call the service, and
// render the response. No business logic lives here.
type Handler struct {
	service AuthService
	codec   *TokenCodec
}

// NewHandler creates a new auth handler with the given service and codec.
func NewHandler(service AuthService, codec *TokenCodec) *Handler {
	return &Handler{service: service, codec: codec}
}

// LoginForm renders the login page (GET /login).
func (h *Handler) LoginForm(c echo.Context) error {
	// Already logged in -- nothing to do here.
	if GetIdentity(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "login", echo.Map{"Username": ""})
}

// Login processes the login form submission (POST /login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	username, password, errs := ValidateLogin(req.Username, req.Password)
	if len(errs) > 0 {
		return c.Render(http.StatusOK, "login", echo.Map{
			"Errors":   errs,
			"Username": username,
		})
	}

	user, err := h.service.Authenticate(c.Request().Context(), username, password)
	if err != nil {
		if appErr, ok := err.(*apperror.AppError); ok && appErr.Code == http.StatusUnauthorized {
			return c.Render(http.StatusOK, "login", echo.Map{
				"Errors":   []string{appErr.Message},
				"Username": username,
			})
		}
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Register processes the registration form submission (POST /register).
// Validation errors re-render the homepage, which hosts the registration
// form. A successful registration logs the new user straight in.
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	username, password, errs := ValidateRegistration(req.Username, req.Password)

	// The collision check runs alongside field validation so a taken
	// username and a bad password surface on the same page load.
	if username != "" {
		taken, err := h.service.UsernameTaken(c.Request().Context(), username)
		if err != nil {
			return err
		}
		if taken {
			errs = append(errs, ErrUsernameTaken.Message)
		}
	}

	if len(errs) > 0 {
		return c.Render(http.StatusOK, "home", echo.Map{
			"Errors":   errs,
			"Username": username,
		})
	}

	user, err := h.service.Register(c.Request().Context(), username, password)
	if err != nil {
		// Registration re-checks uniqueness; this only fires on a race
		// between the check above and the insert.
		if appErr, ok := err.(*apperror.AppError); ok && appErr.Code == http.StatusConflict {
			return c.Render(http.StatusOK, "home", echo.Map{
				"Errors":   []string{appErr.Message},
				"Username": username,
			})
		}
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie (GET /logout). The token itself cannot
// be revoked; it simply ages out at expiry.
func (h *Handler) Logout(c echo.Context) error {
	ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// startSession issues a session token for the user and sets the cookie.
func (h *Handler) startSession(c echo.Context, user *User) error {
	token, err := h.codec.Issue(user.ID, user.Username)
	if err != nil {
		return apperror.NewInternal(err)
	}
	SetSessionCookie(c, token)
	return nil
}
