package auth

import (
	"net/http"
	"time"

	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/user"
)

const sessionTTL = 24 * time.Hour

type Handler struct {
	users user.UserService
}

func NewHandler(users user.UserService) *Handler {
	return &Handler{users: users}
}

// Login verifies Basic credentials and issues a session token, returned in
// the body and as an httpOnly cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	email, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="restricted"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.users.Authenticate(r.Context(), email, password)
	if err != nil {
		log.Warn("Falha de login", "email", email)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := GenerateJWT(u.ID.String(), u.Email, u.IsTeacher, sessionTTL)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar token de sessão")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"token":      token,
		"email":      u.Email,
		"is_teacher": u.IsTeacher,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
