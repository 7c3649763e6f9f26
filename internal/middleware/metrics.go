package middleware

import (
	"net/http"
	"strconv"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/metrics"
)

var routes = map[string]bool{
	"/api/paraphrase": true,
	"/api/tones":      true,
	"/api/models":     true,
	"/api/health":     true,
	"/metrics":        true,
}

// routeLabel collapses unrouted paths so scanners cannot grow label cardinality.
func routeLabel(path string) string {
	if routes[path] {
		return path
	}
	return "other"
}

// Metrics records request count by method, route, and status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(sw.status)).Inc()
	})
}
