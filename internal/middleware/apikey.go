package middleware

import (
	"crypto/subtle"
	"net/http"
)

// exemptPaths skip API key checks so monitoring works without credentials.
var exemptPaths = map[string]bool{
	"/api/health": true,
	"/metrics":    true,
}

// APIKey returns middleware that requires a valid X-API-Key header.
// If expectedKey is empty, the middleware is a no-op.
func APIKey(expectedKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expectedKey == "" || exemptPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-API-Key")
			if provided == "" {
				writeError(w, http.StatusUnauthorized, "missing API key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(expectedKey)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
