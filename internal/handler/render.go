package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"inventory-tracker/internal/model"
	"inventory-tracker/web"
)

// IndexPage is the data rendered by the inventory page.
type IndexPage struct {
	Inventory []model.InventoryItem
	Locations []model.Location
	Directive model.Directive
}

// Renderer renders the server-side pages.
type Renderer interface {
	RenderIndex(w io.Writer, page IndexPage) error
}

type templateRenderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (Renderer, error) {
	funcs := template.FuncMap{
		"price": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 2, 64)
		},
	}

	templates, err := template.New("pages").Funcs(funcs).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &templateRenderer{templates: templates}, nil
}

// RenderIndex renders the whole page before anything is written to w.
func (t *templateRenderer) RenderIndex(w io.Writer, page IndexPage) error {
	var buf bytes.Buffer
	if err := t.templates.ExecuteTemplate(&buf, "index", page); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
