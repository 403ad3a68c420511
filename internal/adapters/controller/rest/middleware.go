package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/campushub/api/internal/domain/entity"
	"github.com/campushub/api/pkg/auth"
	"github.com/campushub/api/pkg/logger"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFromContext returns the verified caller identity set by Authenticate.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

type Middleware struct {
	tokens *auth.TokenManager
	logger *logger.Logger
}

func NewMiddleware(tokens *auth.TokenManager, log *logger.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		logger: log,
	}
}

// Authenticate resolves the bearer token to (userId, role) and stores it on
// the request context. A missing token is 401; an invalid or expired one 403.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "access token required")
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects callers whose resolved role is outside the allowed set.
// Must run after Authenticate.
func RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				writeError(w, http.StatusUnauthorized, "access token required")
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "insufficient permissions")
		})
	}
}

// AccessLog logs one line per request: method, path, status, duration.
func (m *Middleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		m.logger.Infof("%s %s | %d | %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
