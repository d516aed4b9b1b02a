package httpx

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path"
)

//go:embed static/*
var staticFS embed.FS

// Templates is the rendering collaborator. *render.Renderer satisfies it.
type Templates interface {
	Render(w io.Writer, name string, data any) error
	Has(name string) bool
}

type pageData struct {
	Name  string
	Title string
}

// staticFiles lists the embedded asset paths relative to static/.
// Directories are skipped, so nothing but a real file is ever mounted.
func staticFiles() []string {
	var out []string
	_ = fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out = append(out, p[len("static/"):])
		}
		return nil
	})
	return out
}

func serveStatic(name string) http.HandlerFunc {
	full := path.Join("static", name)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, staticFS, full)
	}
}
