package httpx

import (
	"bytes"
	"net/http"
)

func (s *Server) handlePage(rt Route) http.HandlerFunc {
	data := pageData{Name: rt.Name, Title: rt.Title}
	return func(w http.ResponseWriter, r *http.Request) {
		// erst puffern, damit bei Fehlern kein halber Body rausgeht
		var buf bytes.Buffer
		if err := s.Tmpl.Render(&buf, rt.Template, data); err != nil {
			s.Log.WithError(err).WithField("template", rt.Template).Error("render failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
