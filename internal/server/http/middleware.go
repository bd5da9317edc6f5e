package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/logging"
	"github.com/Jovinull/MyGastronomy/internal/server/auth"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
	"github.com/go-chi/chi/v5/middleware"
)

// TokenParser is satisfied by *auth.Signer.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type ctxKey string

const accountKey ctxKey = "account"

// AccountFromContext returns the account stored by RequireToken.
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	a, ok := ctx.Value(accountKey).(*models.Account)
	return a, ok
}

// RequireToken rejects requests without a valid "Authorization: Bearer"
// token and stores the token's account in the request context.
func RequireToken(p TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeaderName)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				fail(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := p.Parse(strings.TrimSpace(token))
			if err != nil {
				fail(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			account := &models.Account{ID: claims.Subject, Email: claims.Email}
			ctx := context.WithValue(r.Context(), accountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogging logs one line per request once it has been served.
func RequestLogging(l logging.Logger) func(http.Handler) http.Handler {
	l = l.With("module", "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			l.Info(r.Context(), "request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
