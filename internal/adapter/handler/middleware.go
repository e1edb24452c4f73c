package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/rl1809/campus-market/internal/core/domain"
)

type contextKey string

const userContextKey contextKey = "authenticated-user"

// requireAuth resolves the bearer token and attaches the acting user to the
// request context. Services never read it from there: handlers pass the user
// ID on as an explicit argument.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.auth.Authenticate(r.Context(), bearerToken(r))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "a valid bearer token is required")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// userFrom returns the user placed by requireAuth; nil on unauthenticated
// routes.
func userFrom(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userContextKey).(*domain.User)
	return user
}
