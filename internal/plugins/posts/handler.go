package posts

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eamonvale/inkpost/internal/apperror"
	"github.com/eamonvale/inkpost/internal/markdown"
	"github.com/eamonvale/inkpost/internal/plugins/auth"
)

// Handler handles HTTP requests for posts. Handlers are thin: they bind the
// form, validate, call the service, and render the response.
//
// Failure policy for mutation routes: a missing post and a post owned by
// someone else both produce a plain redirect to the homepage. No error
// page, no hint that the id was ever valid.
type Handler struct {
	service PostService
}

// NewHandler creates a new posts handler with the given service.
func NewHandler(service PostService) *Handler {
	return &Handler{service: service}
}

// Home renders the homepage (GET /): the registration pitch for anonymous
// visitors, the dashboard with the visitor's own posts for everyone else.
func (h *Handler) Home(c echo.Context) error {
	identity := auth.GetIdentity(c)
	if identity == nil {
		return c.Render(http.StatusOK, "home", echo.Map{"Username": ""})
	}

	list, err := h.service.ListByAuthor(c.Request().Context(), identity.UserID)
	if err != nil {
		return apperror.NewInternal(err)
	}

	return c.Render(http.StatusOK, "dashboard", echo.Map{
		"Identity": identity,
		"Posts":    list,
	})
}

// CreateForm renders the new-post form (GET /create-post).
func (h *Handler) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "create_post", echo.Map{
		"Identity": auth.GetIdentity(c),
		"Title":    "",
		"Body":     "",
	})
}

// Create processes the new-post form (POST /create-post).
func (h *Handler) Create(c echo.Context) error {
	identity := auth.GetIdentity(c)

	var form PostForm
	if err := c.Bind(&form); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	title, body, errs := ValidatePost(form.Title, form.Body)
	if len(errs) > 0 {
		return c.Render(http.StatusOK, "create_post", echo.Map{
			"Identity": identity,
			"Errors":   errs,
			"Title":    form.Title,
			"Body":     form.Body,
		})
	}

	post, err := h.service.Create(c.Request().Context(), identity, title, body)
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(post.ID, 10))
}

// EditForm renders the edit form for an owned post (GET /edit-post/:id).
// Anyone else's post, or a nonexistent one, silently redirects home.
func (h *Handler) EditForm(c echo.Context) error {
	identity := auth.GetIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	post, err := h.service.GetOwned(c.Request().Context(), identity, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	return c.Render(http.StatusOK, "edit_post", echo.Map{
		"Identity": identity,
		"Post":     post,
		"Title":    post.Title,
		"Body":     post.Body,
	})
}

// Edit processes the edit form (POST /edit-post/:id). Ownership is checked
// before validation, matching the edit form itself: a non-owner is bounced
// without learning whether their input was valid.
func (h *Handler) Edit(c echo.Context) error {
	identity := auth.GetIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	post, err := h.service.GetOwned(c.Request().Context(), identity, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	var form PostForm
	if err := c.Bind(&form); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	title, body, errs := ValidatePost(form.Title, form.Body)
	if len(errs) > 0 {
		return c.Render(http.StatusOK, "edit_post", echo.Map{
			"Identity": identity,
			"Post":     post,
			"Errors":   errs,
			"Title":    form.Title,
			"Body":     form.Body,
		})
	}

	if _, err := h.service.Update(c.Request().Context(), identity, id, title, body); err != nil {
		if apperror.IsNotFound(err) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(id, 10))
}

// Delete processes a delete request (POST /delete-post/:id).
func (h *Handler) Delete(c echo.Context) error {
	identity := auth.GetIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.service.Delete(c.Request().Context(), identity, id); err != nil {
		if apperror.IsNotFound(err) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// View renders a single post (GET /post/:id). Public -- no auth required.
// IsAuthor only toggles the edit controls in the template.
func (h *Handler) View(c echo.Context) error {
	identity := auth.GetIdentity(c)

	id, ok := parseID(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	return c.Render(http.StatusOK, "post", echo.Map{
		"Identity": identity,
		"Post":     post,
		"IsAuthor": Authorize(identity, post),
		"Rendered": markdown.Render(post.Body),
	})
}

// parseID reads the :id route param as an int64.
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
