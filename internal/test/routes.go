package test

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prova-app/prova-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Dashboard)
	r.With(auth.RequireTeacher).Post("/create", h.Create)
	r.Get("/{id}", h.Get)
	return r
}
