package httpx

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route binds a fixed path to one template.
type Route struct {
	Path     string
	Template string
	Name     string
	Title    string
}

var routes = []Route{
	{Path: "/", Template: "homepage.html", Name: "homepage", Title: "Home"},
	{Path: "/hpcapture.html", Template: "hpcapture.html", Name: "hpcapture", Title: "Capture"},
	{Path: "/hpcrime.html", Template: "hpcrime.html", Name: "hpcrime", Title: "Crime"},
}

// Routes returns a copy of the route table.
func Routes() []Route { return slices.Clone(routes) }

func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.Log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	if s.Config.NoIndex {
		r.Use(NoIndex)
	}
	MountRoutes(r, s)
	return r
}

// MountRoutes binds the route table and the embedded static files to r.
func MountRoutes(r chi.Router, s *Server) {
	for _, rt := range Routes() {
		r.Get(rt.Path, s.handlePage(rt))
	}
	// jede Datei einzeln, alles andere unter /static/ ist 404
	for _, name := range staticFiles() {
		r.Get("/static/"+name, serveStatic(name))
	}
}

func NoIndex(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Robots-Tag", "noindex, nofollow")
		next.ServeHTTP(w, r)
	})
}
