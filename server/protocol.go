package server

import (
	"net/http"
)

// protocolVersionMiddleware rejects requests declaring a different MCP-Protocol-Version
// and advertises the server version on every response.
func protocolVersionMiddleware(protocolVersion string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			version := r.Header.Get("MCP-Protocol-Version")
			if version != "" && version != protocolVersion {
				http.Error(w, "invalid MCP-Protocol-Version", http.StatusBadRequest)
				return
			}
			w.Header().Set("MCP-Protocol-Version", protocolVersion)
			next.ServeHTTP(w, r)
		})
	}
}
