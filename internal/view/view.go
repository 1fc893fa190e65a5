// Package view renders the HTML pages and holds the static assets served at the web root.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed public
var publicFS embed.FS

// Page names understood by Render.
const (
	PageIndex = "index"
	PageNew   = "new"
	PageShow  = "show"
	PageEdit  = "edit"
	PageError = "error"
)

var pages = []string{PageIndex, PageNew, PageShow, PageEdit, PageError}

// Renderer turns template data into HTML. Pages receive either
// {"posts": []*model.Post} or {"post": *model.Post} (possibly nil).
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

// TemplateRenderer parses every page together with the shared layout once at startup.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	r := &TemplateRenderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *TemplateRenderer) Render(name string, data any) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Public returns the static asset tree served at "/".
func Public() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic("view: embedded public dir missing: " + err.Error())
	}
	return sub
}
