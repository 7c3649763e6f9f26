package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

// LlamaCppAdapter connects to llama-server's OpenAI-compatible /v1/chat/completions.
type LlamaCppAdapter struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

func (l *LlamaCppAdapter) Name() string {
	return fmt.Sprintf("llama.cpp (%s)", l.Model)
}

func (l *LlamaCppAdapter) Generate(ctx context.Context, p prompt.Payload) (string, error) {
	cfg := goopenai.DefaultConfig("")
	cfg.BaseURL = strings.TrimRight(l.BaseURL, "/") + "/v1"
	if l.Client != nil {
		cfg.HTTPClient = l.Client
	}
	client := goopenai.NewClientWithConfig(cfg)

	var messages []goopenai.ChatCompletionMessage
	if p.System != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: p.System})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, Content: p.User})

	resp, err := client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:    l.Model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("llamacpp: request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llamacpp: empty response choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (l *LlamaCppAdapter) Available() bool {
	return probe(l.Client, strings.TrimRight(l.BaseURL, "/")+"/health")
}

// probe reports whether a GET on url answers 200 within two seconds.
func probe(client *http.Client, url string) bool {
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
