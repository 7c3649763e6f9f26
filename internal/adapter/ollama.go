package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

// OllamaAdapter connects to a local Ollama instance via /api/chat.
type OllamaAdapter struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

type ollamaErrorResponse struct {
	Error string `json:"error"`
}

func (o *OllamaAdapter) Name() string {
	return fmt.Sprintf("Ollama (%s)", o.Model)
}

func (o *OllamaAdapter) Generate(ctx context.Context, p prompt.Payload) (string, error) {
	reqBody := ollamaChatRequest{Model: o.Model}
	if p.System != "" {
		reqBody.Messages = append(reqBody.Messages, ollamaMessage{Role: "system", Content: p.System})
	}
	reqBody.Messages = append(reqBody.Messages, ollamaMessage{Role: "user", Content: p.User})

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	url := strings.TrimRight(o.BaseURL, "/") + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ollamaErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
			return "", fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama: API error: %s", errResp.Error)
	}

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}

	return strings.TrimSpace(chatResp.Message.Content), nil
}

func (o *OllamaAdapter) Available() bool {
	return probe(o.Client, strings.TrimRight(o.BaseURL, "/")+"/")
}
