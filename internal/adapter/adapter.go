package adapter

import (
	"context"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

// LLMAdapter defines the contract for generation backends.
type LLMAdapter interface {
	Name() string
	Generate(ctx context.Context, p prompt.Payload) (string, error)
	Available() bool
}

// ModelInfo is exposed via GET /api/models.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
