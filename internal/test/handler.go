package test

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prova-app/prova-api/internal/auth"
	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/question"
)

type Handler struct {
	service TestService
}

func NewHandler(s TestService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	creator, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para criar teste")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var dto CreateTestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Warn("Corpo da requisição excede o limite de tamanho")
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.WithError(err).Error("Corpo da requisição inválido para criar teste")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Create(r.Context(), creator, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			http.Error(w, "title and file are required", http.StatusBadRequest)
		case errors.Is(err, ErrDecode):
			http.Error(w, "file is not valid base64", http.StatusBadRequest)
		case errors.Is(err, ErrTooLarge):
			http.Error(w, "file exceeds the size limit", http.StatusBadRequest)
		case errors.Is(err, question.ErrFormat):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Erro ao criar teste")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, CreateTestResponse{
		Title:     t.Title,
		CreatedBy: t.CreatedBy,
		Path:      t.Path,
		MaxScore:  t.MaxScore,
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	u, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tests, err := h.service.ListFor(r.Context(), u)
	if err != nil {
		log.WithError(err).Error("Erro ao listar testes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if tests == nil {
		tests = []*Test{}
	}

	config.JSON(w, http.StatusOK, DashboardResponse{
		Email:     u.Email,
		IsTeacher: u.IsTeacher,
		Tests:     tests,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	// an id that is not a UUID cannot reference any test
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "test not found", http.StatusNotFound)
		return
	}

	t, questions, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "test not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar teste")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, TestDetailResponse{
		MaxTime:   t.MaxTime,
		Questions: questions,
	})
}
