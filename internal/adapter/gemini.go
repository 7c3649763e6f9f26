package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

// GeminiAdapter calls the Gemini generateContent API.
type GeminiAdapter struct {
	APIKey          string
	Model           string
	MaxOutputTokens int
	// BaseURL overrides the Gemini endpoint; empty uses the SDK default.
	BaseURL string
	Client  *http.Client
}

func (g *GeminiAdapter) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.Model)
}

func (g *GeminiAdapter) Generate(ctx context.Context, p prompt.Payload) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  g.Client,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.BaseURL},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{}
	if g.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(g.MaxOutputTokens)
	}
	if p.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, g.Model, genai.Text(p.User), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

func (g *GeminiAdapter) Available() bool {
	return g.APIKey != ""
}
