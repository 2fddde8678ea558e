package handlers

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"xestetik/internal/models"

	"github.com/labstack/echo/v4"
)

const (
	layoutTemplate   = "templates/layout.html"
	partialsTemplate = "templates/partials.html"
)

// productCard is the argument of the product_card partial
type productCard struct {
	Product  *models.ProductView
	ImgClass string
	Round    string
}

var templateFuncs = template.FuncMap{
	"paragraphs": paragraphs,
	"card": func(p *models.ProductView, imgClass, round string) productCard {
		return productCard{Product: p, ImgClass: imgClass, Round: round}
	},
}

// TemplateRenderer implements echo.Renderer. Every page is parsed together
// with the shared layout and partials under its own file name.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	base, err := template.New("site").Funcs(templateFuncs).ParseFS(fsys, layoutTemplate, partialsTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &TemplateRenderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutTemplate || file == partialsTemplate {
			continue
		}
		page, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		r.pages[path.Base(file)] = page
	}
	return r, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

// paragraphs splits text on blank lines
func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
