package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prova-app/prova-api/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para registro")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			http.Error(w, "email and password are required", http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateEmail):
			http.Error(w, "email already registered", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Erro ao registrar usuário")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, RegisterUserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Status: "success",
	})
}
