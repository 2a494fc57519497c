package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/carebridge/eldercare-backend/pkg/logger"
)

//go:embed templates/*.html
var files embed.FS

var pages = []string{
	"landing",
	"signup",
	"login",
	"elder_dashboard",
	"guardian_dashboard",
	"view_elders",
	"profile",
	"bmi",
	"forgot_password",
	"error",
}

// Renderer holds the parsed template set. Each page is parsed together with
// the shared base layout so pages can define the same content block.
type Renderer struct {
	pages map[string]*template.Template
	logg  *logger.Logger
}

func New(logg *logger.Logger) (*Renderer, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(files, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}
	return &Renderer{pages: parsed, logg: logg}, nil
}

// Render writes the named page with the provided data.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil && r.logg != nil {
		r.logg.Error(req.Context(), "render template failed", err)
	}
}

// RenderError writes the minimal error page with a 500 status.
func (r *Renderer) RenderError(w http.ResponseWriter, req *http.Request) {
	r.Render(w, req, http.StatusInternalServerError, "error", nil)
}
