package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/services"
)

type subjectFieldType string

const subjectField subjectFieldType = "subjectField"

// AuthMiddlewareConfig holds the paths excluded from the bearer-token
// check.
type AuthMiddlewareConfig struct {
	excludePaths []string
}

func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// Middleware validates the Authorization bearer token on every request
// whose path is not excluded, and stores the token subject in the request
// context.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		jwtService := GetServiceFromContext[models.JWTService](w, r, JwtServiceKey)

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			http.Error(w, "Bearer token is empty", http.StatusUnauthorized)
			return
		}

		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsInvalid) {
				http.Error(w, "Token is invalid", http.StatusUnauthorized)
				return
			}

			if errors.Is(err, services.ErrTokenIsExpired) {
				http.Error(w, "Token is expired", http.StatusUnauthorized)
				return
			}

			http.Error(w, fmt.Sprintf("Error occurred during validating token: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during reading sub claim: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectField, subject)))
	})
}

// GetSubjectFromContext retrieves the authenticated subject from the
// request context.
func GetSubjectFromContext(w http.ResponseWriter, r *http.Request) string {
	subject, ok := r.Context().Value(subjectField).(string)

	if !ok {
		http.Error(w, "Could not retrieve subject from context", http.StatusInternalServerError)
		return ""
	}

	return subject
}
