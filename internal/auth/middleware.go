package auth

import (
	"context"
	"net/http"
	"strings"

	"parkeo/internal/entities"
	"parkeo/internal/service"
)

type contextKey int

const claimsKey contextKey = 0

// Middleware verifies bearer tokens and enforces roles at the HTTP boundary.
// The parking core itself never checks roles.
type Middleware struct {
	auth service.AuthService
}

func NewMiddleware(authService service.AuthService) *Middleware {
	return &Middleware{auth: authService}
}

// RequireUser admits any request carrying a valid token.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.verify(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin admits only tokens carrying the ADMIN role.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.verify(w, r)
		if !ok {
			return
		}
		if claims.Role != entities.RoleAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func (m *Middleware) verify(w http.ResponseWriter, r *http.Request) (service.TokenClaims, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return service.TokenClaims{}, false
	}
	claims, err := m.auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return service.TokenClaims{}, false
	}
	return claims, true
}

// WithClaims attaches verified token claims to the context.
func WithClaims(ctx context.Context, claims service.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// UserID returns the authenticated user's ID, or zero when unauthenticated.
func UserID(r *http.Request) int {
	if claims, ok := r.Context().Value(claimsKey).(service.TokenClaims); ok {
		return claims.UserID
	}
	return 0
}
