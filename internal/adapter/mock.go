package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

// MockAdapter returns simulated responses with a configurable delay.
// Used for development and testing without a real LLM backend.
type MockAdapter struct {
	Delay time.Duration
	// Reply, when set, is returned verbatim instead of the simulated rewrite.
	Reply string
	Err   error
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Generate(ctx context.Context, p prompt.Payload) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	rewritten := capitalize(strings.TrimSpace(prompt.SourceText(p.User)))
	if p.System == "" {
		return rewritten, nil
	}

	// Humanize payloads get the array-in-prose shape real models tend to produce.
	options, err := json.Marshal([]string{rewritten, "In short, " + rewritten})
	if err != nil {
		return "", fmt.Errorf("mock: marshal options: %w", err)
	}
	return "Here are two options:\n" + string(options), nil
}

func (m *MockAdapter) Available() bool { return true }

func capitalize(s string) string {
	if len(s) > 0 && s[0] >= 'a' && s[0] <= 'z' {
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return s
}
