package auth

import (
	"net/http"
	"strings"

	"github.com/prova-app/prova-api/internal/config"
	"github.com/prova-app/prova-api/internal/user"
)

// Middleware authenticates every request to a protected path. Credentials
// are taken from HTTP Basic auth and verified against the stored bcrypt
// hash; a bearer token or "jwt" cookie issued by the login endpoint is
// accepted as an alternative so clients do not have to resend the password
// on every call.
func Middleware(users user.UserService, repo user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			u, err := resolvePrincipal(r, users, repo)
			if err != nil {
				log.Warn("Requisição não autorizada")
				w.Header().Set("WWW-Authenticate", `Basic realm="restricted"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func resolvePrincipal(r *http.Request, users user.UserService, repo user.UserRepository) (*user.User, error) {
	if email, password, ok := r.BasicAuth(); ok {
		u, err := users.Authenticate(r.Context(), email, password)
		if err != nil {
			return nil, ErrUnauthorized
		}
		return u, nil
	}

	tokenStr := bearerToken(r)
	if tokenStr == "" {
		return nil, ErrUnauthorized
	}

	claims, err := ValidateJWT(tokenStr)
	if err != nil {
		return nil, ErrUnauthorized
	}

	u, err := repo.FindByID(claims.UserID)
	if err != nil || u == nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("jwt"); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireTeacher guards routes only teacher principals may call. It must
// run after Middleware.
func RequireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := GetUserFromContext(r.Context())
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !u.IsTeacher {
			http.Error(w, "teacher role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
