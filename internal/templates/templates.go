// Package templates is the rendering boundary. It receives only sanitized,
// pre-validated view data from the handlers; the one raw-HTML value it ever
// embeds is the markdown package's sanitized output. Pages are plain
// html/template files compiled into the binary with go:embed.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed *.html
var files embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. Called once at startup; a broken
// template is a fatal startup error, not a per-request one.
func New() (*Renderer, error) {
	t, err := template.ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page template to w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
