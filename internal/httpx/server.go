package httpx

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

/*
Server hält Config, Logger und die bereits geparsten Templates.
Nach NewServer wird nichts mehr verändert.
*/
type Server struct {
	Config Config
	Tmpl   Templates
	Log    *logrus.Logger
}

type Config struct {
	// NoIndex sets X-Robots-Tag on every response.
	NoIndex bool
}

// NewServer checks that every route's template is loaded before any
// request is served.
func NewServer(cfg Config, tmpl Templates, log *logrus.Logger) (*Server, error) {
	for _, rt := range Routes() {
		if !tmpl.Has(rt.Template) {
			return nil, errors.Errorf("route %s: template %s not loaded", rt.Path, rt.Template)
		}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{Config: cfg, Tmpl: tmpl, Log: log}, nil
}
