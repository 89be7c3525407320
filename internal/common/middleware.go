package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	ctxUserID   contextKey = "user_id"
	ctxUsername contextKey = "username"
)

// AuthMiddleware enforces a Bearer JWT on every request it wraps and
// injects the authenticated user identity into the request context.
// Public routes (register, login) are simply not wrapped.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			RespondError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		// header = "Bearer <token>"
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			RespondError(w, http.StatusUnauthorized, "invalid auth header")
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			RespondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := ContextWithUser(r.Context(), claims.UserID, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextWithUser injects a user identity the way AuthMiddleware does.
func ContextWithUser(ctx context.Context, userID uint64, username string) context.Context {
	ctx = context.WithValue(ctx, ctxUserID, userID)
	return context.WithValue(ctx, ctxUsername, username)
}

// UserIDFromContext returns the authenticated user id injected by
// AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(ctxUserID).(uint64)
	return id, ok
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(ctxUsername).(string)
	return name, ok
}
