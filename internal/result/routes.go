package result

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prova-app/prova-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Submit)
	r.With(auth.RequireTeacher).Get("/", h.List)
	return r
}
