// Package middleware holds the HTTP wrappers shared by every route:
// authentication, authorization, rate limiting, CORS and request logging.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rentx-lk/rentx-api/internal/auth"
	"github.com/rentx-lk/rentx-api/internal/httpjson"
	"github.com/rentx-lk/rentx-api/internal/models"
)

type contextKey string

// UserContextKey holds the *models.Claims of an authenticated request.
const UserContextKey contextKey = "user"

// AuthMiddleware checks bearer tokens and account permissions.
type AuthMiddleware struct {
	authService *auth.Service
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate rejects requests without a valid access token and stores the
// token claims in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeUnauthorized, "authorization header required")
			return
		}

		claims, err := m.claimsFromHeader(header)
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeTokenExpired, "token expired")
			return
		case err != nil:
			httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeInvalidToken, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserContextKey, claims)))
	})
}

func (m *AuthMiddleware) claimsFromHeader(header string) (*models.Claims, error) {
	token, err := m.authService.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}
	return m.authService.ValidateToken(token)
}

// RequireRole lets through the given role. Admins always pass.
func (m *AuthMiddleware) RequireRole(role models.Role) func(http.Handler) http.Handler {
	return authorize(func(c *models.Claims) bool {
		return c.Role == role || c.Role == models.RoleAdmin
	})
}

// RequirePermission lets through accounts whose role grants p.
func (m *AuthMiddleware) RequirePermission(p models.Permission) func(http.Handler) http.Handler {
	return authorize(func(c *models.Claims) bool {
		return c.Role.Can(p)
	})
}

// authorize must run behind Authenticate.
func authorize(allowed func(*models.Claims) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserFromContext(r.Context())
			if !ok {
				httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeUnauthorized, "user context not found")
				return
			}
			if !allowed(claims) {
				httpjson.WriteError(w, http.StatusForbidden, httpjson.CodeForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserFromContext returns the claims stored by Authenticate.
func GetUserFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok
}
