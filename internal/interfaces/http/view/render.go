package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Páginas disponibles; cada una se combina con la plantilla base y los parciales.
const (
	PageHome     = "home"
	PageCategory = "category"
)

// Renderer ejecuta las plantillas embebidas. Es seguro para uso concurrente.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parsea todas las plantillas al arrancar.
func NewRenderer() (*Renderer, error) {
	funcMap := template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageHome, PageCategory} {
		t, err := template.New(page).Funcs(funcMap).ParseFS(templateFS,
			"templates/base.tmpl",
			"templates/partials.tmpl",
			"templates/"+page+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("view: parsear %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render escribe la página indicada usando el layout "base".
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("view: página desconocida %q", page)
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("view: ejecutar %s: %w", page, err)
	}
	return nil
}

// Static sistema de archivos con los assets (CSS) servidos bajo /assets.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
