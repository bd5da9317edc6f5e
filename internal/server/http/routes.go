package http

import (
	"net/http"

	"github.com/Jovinull/MyGastronomy/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the API handler.
//
// Routes:
//
//	GET  /             -> Welcome
//	POST /auth/signup  -> SignUp
//	POST /auth/login   -> Login
//	GET  /auth/me      -> Me (bearer token required)
//
// Middleware, outermost first: request id, panic recovery, request logging,
// CORS for allowedOrigins.
func NewRouter(h *AuthHandler, tokens TokenParser, logger logging.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", h.Welcome)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(RequireToken(tokens))
			r.Get("/me", h.Me)
		})
	})

	return r
}
