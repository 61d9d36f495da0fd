package posts

import (
	"github.com/labstack/echo/v4"

	"github.com/eamonvale/inkpost/internal/plugins/auth"
)

// RegisterRoutes sets up all post-related routes. Viewing a post is public;
// authoring routes require a session, and the ownership check inside the
// service narrows mutation further to the post's owner.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Home)
	e.GET("/post/:id", h.View)

	authed := e.Group("", auth.RequireAuth())
	authed.GET("/create-post", h.CreateForm)
	authed.POST("/create-post", h.Create)
	authed.GET("/edit-post/:id", h.EditForm)
	authed.POST("/edit-post/:id", h.Edit)
	authed.POST("/delete-post/:id", h.Delete)
}
