package middleware

import (
	"context"
	"net/http"
	"strings"

	"projectflow/backend/logging"
)

type contextKey string

const tokenKey contextKey = "accessToken"

// BearerTokenMiddleware requires an Authorization: Bearer header and stores the
// token on the request context for the session handlers.
func BearerTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader || tokenStr == "" {
			logging.Logger.Warnf("Event ID: AUTH_BEARER_PREFIX_MISSING, Description: Bearer prefix missing for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), tokenKey, tokenStr)))
	})
}

// TokenFromContext returns the token set by BearerTokenMiddleware.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
