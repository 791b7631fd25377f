package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.Healthz)
	r.Get("/sites", s.GetSites)
	r.Post("/run-check", s.RunChecks)

	return r
}
