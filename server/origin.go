package server

import (
	"net/http"
	"strings"
)

// originValidationMiddleware rejects browser requests whose Origin is not allowed.
// Requests without an Origin header pass; "*" allows every origin.
func originValidationMiddleware(allowed []string) Middleware {
	allowedOrigins := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		allowedOrigins[normalizeOrigin(origin)] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || allowedOrigins["*"] || allowedOrigins[normalizeOrigin(origin)] {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "origin not allowed", http.StatusForbidden)
		})
	}
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(origin), "/"))
}
