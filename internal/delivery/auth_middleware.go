package delivery

import (
	"crypto/hmac"
	"net/http"
)

// APIKeyMiddleware guards the admin endpoints with a shared key passed
// in the X-API-Key header. An empty configured key locks the endpoints
// entirely.
func APIKeyMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				http.Error(w, "admin api disabled", http.StatusForbidden)
				return
			}

			got := r.Header.Get("X-API-Key")
			if !hmac.Equal([]byte(got), []byte(key)) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
