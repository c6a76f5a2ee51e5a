package main

import (
	"net/http"
	"strings"

	"projectflow/api-gateway/utils"
	"projectflow/backend/logging"
)

// authMiddleware resolves the bearer token to a role and passes it on in the Role
// header. A Role header sent by the client is never trusted.
func authMiddleware(next http.Handler, validator *utils.TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Del("Role")

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			http.Error(w, "Invalid Authorization header", http.StatusUnauthorized)
			return
		}

		userRole, err := validator.RoleFor(tokenString)
		if err != nil {
			logging.Logger.Warnf("Event ID: GATEWAY_INVALID_TOKEN, Description: Rejected token for %s %s", r.Method, r.URL.Path)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		if userRole == "" {
			http.Error(w, "Missing role in token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("Role", userRole)
		next.ServeHTTP(w, r)
	})
}

// publicMiddleware strips any client-supplied Role header on open routes.
func publicMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Del("Role")
		next.ServeHTTP(w, r)
	})
}
