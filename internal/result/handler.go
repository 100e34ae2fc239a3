package result

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prova-app/prova-api/internal/auth"
	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/test"
)

type Handler struct {
	service ResultService
}

func NewHandler(s ResultService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	u, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto SubmitResultDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para registrar resultado")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Submit(r.Context(), u, dto); err != nil {
		switch {
		case errors.Is(err, ErrInvalidTestID), errors.Is(err, ErrInvalidScore):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, test.ErrNotFound):
			http.Error(w, "test not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Erro ao registrar resultado")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, SubmitResultResponse{
		Message: "score recorded",
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	u, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rows, err := h.service.ListForTeacher(r.Context(), u)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []ResultRow{}
	}

	config.JSON(w, http.StatusOK, ListResultsResponse{Results: rows})
}
