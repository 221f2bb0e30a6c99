// Package web renders dashboard pages with the embedded HTML templates.
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/agency-dashboard/internal/dashboard"
)

//go:embed templates
var assets embed.FS

// Renderer executes the dashboard layout.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("dashboard.html").ParseFS(assets, "templates/dashboard.html")
	if err != nil {
		return nil, eris.Wrap(err, "web: parse templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes page as a complete HTML document.
func (r *Renderer) Render(w io.Writer, page *dashboard.Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "dashboard.html", page); err != nil {
		return eris.Wrap(err, "web: render dashboard")
	}
	return nil
}
