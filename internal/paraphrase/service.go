// Package paraphrase validates rewrite requests and runs them through prompt
// construction, a generation backend, and reply interpretation.
package paraphrase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/adapter"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/interpret"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/metrics"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/tone"
)

// Request is one rewrite call. ModelID may be empty to use the default model.
type Request struct {
	Text    string
	Tone    string
	ModelID string
}

// Service is safe for concurrent use; it holds no per-request state.
type Service struct {
	adapters     map[string]adapter.LLMAdapter
	defaultModel string
}

func New(adapters map[string]adapter.LLMAdapter, defaultModel string) *Service {
	return &Service{adapters: adapters, defaultModel: defaultModel}
}

// Validate checks text and tone, returning the parsed tone.
func Validate(text, toneID string) (tone.Tone, error) {
	if strings.TrimSpace(text) == "" {
		return "", &ValidationError{Message: MsgEmptyText}
	}
	t, ok := tone.Parse(toneID)
	if !ok {
		return "", &ValidationError{Message: MsgInvalidTone}
	}
	return t, nil
}

// Rewrite validates req, generates one reply, and interprets it for the tone.
// There are no retries: every failure is returned to the caller.
func (s *Service) Rewrite(ctx context.Context, req Request) (interpret.Result, error) {
	t, err := Validate(req.Text, req.Tone)
	if err != nil {
		return interpret.Result{}, err
	}

	modelID := req.ModelID
	if modelID == "" {
		modelID = s.defaultModel
	}
	a, ok := s.adapters[modelID]
	if !ok {
		return interpret.Result{}, fmt.Errorf("%w: %s", ErrUnknownModel, modelID)
	}

	payload := prompt.Build(req.Text, t)
	metrics.InputChars.Observe(float64(len(req.Text)))

	start := time.Now()
	raw, err := a.Generate(ctx, payload)
	metrics.RewriteDuration.WithLabelValues(modelID, t.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RewritesTotal.WithLabelValues(t.String(), metrics.OutcomeBackendError).Inc()
		return interpret.Result{}, &GenerationError{Model: modelID, Err: err}
	}

	res, err := interpret.Interpret(raw, t)
	if err != nil {
		metrics.RewritesTotal.WithLabelValues(t.String(), metrics.OutcomeParseError).Inc()
		return interpret.Result{}, err
	}

	outcome := metrics.OutcomeOK
	if t == tone.Humanize {
		if res.HasOptions() {
			s.report(ctx, modelID, interpret.Check(res.Options, req.Text))
		} else {
			outcome = metrics.OutcomeDegraded
			slog.WarnContext(ctx, "humanize reply had no array, returning raw text",
				"model", modelID,
				"reply_chars", len(raw),
			)
		}
	}
	metrics.RewritesTotal.WithLabelValues(t.String(), outcome).Inc()
	return res, nil
}

// report records humanize constraint violations. They are not enforced.
func (s *Service) report(ctx context.Context, modelID string, violations []interpret.Violation) {
	for _, v := range violations {
		metrics.ConstraintViolations.WithLabelValues(v.Kind).Inc()
		slog.WarnContext(ctx, "humanize constraint violated",
			"model", modelID,
			"kind", v.Kind,
			"detail", v.Detail,
		)
	}
}
