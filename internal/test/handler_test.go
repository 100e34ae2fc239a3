package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prova-app/prova-api/internal/auth"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := NewService(&fakeTestRepo{}, newStore(t))
	return Routes(NewHandler(svc))
}

func TestHandlerCreateRejectsOversizedBody(t *testing.T) {
	router := newTestRouter(t)

	body := `{"title":"Gigante","file":"` + strings.Repeat("A", maxUploadBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(body))
	req = req.WithContext(auth.WithUser(req.Context(), teacherPrincipal()))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandlerGetUnknownIDIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	// a malformed id and a well-formed but unknown one both resolve to nothing
	for _, id := range []string{"abc", "not-a-uuid", uuid.NewString()} {
		req := httptest.NewRequest(http.MethodGet, "/"+id, nil)
		req = req.WithContext(auth.WithUser(req.Context(), teacherPrincipal()))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "id %q", id)
	}
}
