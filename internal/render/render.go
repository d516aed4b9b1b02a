package render

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var tplFS embed.FS

// ErrNotFound is returned by Render for an unknown template identifier.
var ErrNotFound = errors.New("template not found")

var tmplFuncs = template.FuncMap{
	// aktiver Menüpunkt
	"navClass": func(current, page string) string {
		if current == page {
			return "active"
		}
		return ""
	},
}

/*
Renderer hält die einmal geparsten Templates. Nach New wird nichts mehr
verändert, Render ist daher nebenläufig nutzbar.
*/
type Renderer struct {
	tmpl *template.Template
}

// Default parses the embedded page templates.
func Default() (*Renderer, error) {
	return New(tplFS, "templates/*.html")
}

// New parses every template in fsys matching pattern.
func New(fsys fs.FS, pattern string) (*Renderer, error) {
	t, err := template.New("").Funcs(tmplFuncs).ParseFS(fsys, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "parse templates %q", pattern)
	}
	return &Renderer{tmpl: t}, nil
}

// Has reports whether name was parsed.
func (r *Renderer) Has(name string) bool {
	return r.tmpl.Lookup(name) != nil
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return errors.Wrap(ErrNotFound, name)
	}
	if err := t.Execute(w, data); err != nil {
		return errors.Wrapf(err, "execute %s", name)
	}
	return nil
}
