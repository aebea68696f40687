package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminTokenHeader is the request header carrying the admin shared secret.
const AdminTokenHeader = "X-Admin-Token"

// NewAdminAuth returns a middleware that guards admin routes with a static
// shared-secret header. The comparison is constant-time.
//
// When no token is configured on the server, the admin surface is considered
// unavailable and every request answers 503 — a deployment without the secret
// must not silently open the admin API.
func NewAdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				writeJSONError(w, http.StatusServiceUnavailable, "admin access not configured")
				return
			}
			got := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeJSONError writes the standard {"error": ...} envelope without pulling
// in the handler package (which would create an import cycle).
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":` + `"` + msg + `"}`))
}
