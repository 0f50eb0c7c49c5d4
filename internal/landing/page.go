package landing

import (
	"fmt"
	"html/template"
	"io"

	"github.com/pscheid92/landing/internal/domain"
	"github.com/pscheid92/landing/web"
)

const (
	PageTemplate = "landing.html"
	stylesheet   = "static/app.css"
)

// Page is the data handed to the landing page template. When InlineCSS is
// empty the template links the stylesheet served under /static.
type Page struct {
	Presentation domain.Presentation
	InlineCSS    template.CSS
}

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// RenderStatic writes a self-contained page with the stylesheet inlined, so it
// can be hosted without the server.
func RenderStatic(w io.Writer, p domain.Presentation) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return err
	}

	css, err := web.StaticFiles.ReadFile(stylesheet)
	if err != nil {
		return fmt.Errorf("failed to read stylesheet: %w", err)
	}

	page := Page{Presentation: p, InlineCSS: template.CSS(css)}
	if err := tmpl.ExecuteTemplate(w, PageTemplate, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
