package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eamonvale/inkpost/internal/plugins/auth"
	"github.com/eamonvale/inkpost/internal/plugins/posts"
)

// RegisterRoutes wires up every plugin and registers all application routes.
// This is the single place where the dependency graph is assembled: config
// and shared connections flow in, handlers come out.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Session token codec -- the one process-wide consumer of the secret.
	codec := auth.NewTokenCodec(a.Config.Session.Secret)

	// Identity resolution runs on every request, before any handler.
	e.Use(auth.LoadIdentity(codec))

	// Health check endpoint for container monitoring.
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- auth plugin (register, login, logout) ---
	userRepo := auth.NewUserRepository(a.DB)
	authSvc := auth.NewAuthService(userRepo)
	authHandler := auth.NewHandler(authSvc, codec)
	auth.RegisterRoutes(e, authHandler)

	// --- posts plugin (homepage, dashboard, CRUD) ---
	postRepo := posts.NewCachedRepository(
		posts.NewPostRepository(a.DB),
		a.Redis,
		a.Config.Redis.PostCacheTTL,
	)
	postSvc := posts.NewPostService(postRepo)
	postHandler := posts.NewHandler(postSvc)
	posts.RegisterRoutes(e, postHandler)
}
