package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/adapter"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/handler"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/middleware"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/paraphrase"
)

// Options controls the middleware wrapped around the routes.
// A zero RateLimit disables rate limiting; a zero RequestTimeout disables
// the per-request deadline.
type Options struct {
	APIKey         string
	RateLimit      int
	RequestTimeout time.Duration
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(adapters map[string]adapter.LLMAdapter, models []adapter.ModelInfo, defaultModel string, opts Options) http.Handler {
	svc := paraphrase.New(adapters, defaultModel)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(adapters))
	mux.HandleFunc("/api/models", handler.Models(models))
	mux.HandleFunc("/api/tones", handler.Tones())
	mux.HandleFunc("/api/paraphrase", handler.Paraphrase(svc))
	mux.Handle("/metrics", promhttp.Handler())

	var rl *middleware.RateLimiter
	if opts.RateLimit > 0 {
		rl = middleware.NewRateLimiter(opts.RateLimit, time.Minute)
	}
	return middleware.Chain(mux, rl, opts.APIKey, opts.RequestTimeout)
}
