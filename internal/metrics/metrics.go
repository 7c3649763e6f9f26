package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rewrite outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeDegraded     = "degraded"
	OutcomeParseError   = "parse_error"
	OutcomeBackendError = "backend_error"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paraphrase_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// RewriteDuration tracks generation latency per model and tone.
	RewriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paraphrase_rewrite_duration_seconds",
		Help:    "Time spent waiting on the generation backend.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"model", "tone"})

	// RewritesTotal counts rewrites by tone and outcome.
	RewritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paraphrase_rewrites_total",
		Help: "Rewrites processed, by tone and outcome.",
	}, []string{"tone", "outcome"})

	// ConstraintViolations counts humanize replies that break a requested constraint.
	ConstraintViolations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paraphrase_humanize_constraint_violations_total",
		Help: "Humanize option sets violating count, distinctness, or length constraints.",
	}, []string{"kind"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paraphrase_input_chars",
		Help:    "Number of characters in rewrite input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 20000},
	})

	// AdapterAvailable tracks whether each adapter is reachable.
	AdapterAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "paraphrase_adapter_available",
		Help: "Whether a generation adapter is available (1) or not (0).",
	}, []string{"adapter"})
)
