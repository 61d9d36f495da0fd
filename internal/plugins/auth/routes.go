package auth

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the authentication routes. All of them are public;
// LoginForm redirects authenticated visitors away itself.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/login", h.LoginForm)
	e.POST("/login", h.Login)
	e.POST("/register", h.Register)
	e.GET("/logout", h.Logout)
}
