package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/prova-app/prova-api/internal/auth"
	"github.com/prova-app/prova-api/internal/middlewares"
	"github.com/prova-app/prova-api/internal/result"
	"github.com/prova-app/prova-api/internal/test"
	"github.com/prova-app/prova-api/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	AuthHandler    *auth.Handler
	TestHandler    *test.Handler
	ResultHandler  *result.Handler
	AuthMiddleware func(http.Handler) http.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/users", user.Routes(cfg.UserHandler))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/logout", cfg.AuthHandler.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware)

			r.Mount("/tests", test.Routes(cfg.TestHandler))
			r.Mount("/results", result.Routes(cfg.ResultHandler))
		})
	})
	return r
}
