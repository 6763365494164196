package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/adamanz/crm-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// isPublicPath indica se a rota dispensa autenticação.
// Formulários públicos e o webhook de entrada do Sendblue são autenticados
// por token próprio, não por JWT.
func isPublicPath(path string) bool {
	if path == "/v1/login" || path == "/healthcheck" || path == "/v1/register" {
		return true
	}

	if path == "/v1/messages/inbound" {
		return true
	}

	if strings.HasPrefix(path, "/v1/forms/") && strings.HasSuffix(path, "/submissions") {
		return true
	}

	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
