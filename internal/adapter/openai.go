package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

// OpenAIAdapter calls the OpenAI chat completions API.
type OpenAIAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.Model)
}

func (o *OpenAIAdapter) Generate(ctx context.Context, p prompt.Payload) (string, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(o.APIKey),
		option.WithMaxRetries(0),
	}
	if o.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.BaseURL))
	}
	if o.Client != nil {
		opts = append(opts, option.WithHTTPClient(o.Client))
	}
	client := openai.NewClient(opts...)

	var messages []openai.ChatCompletionMessageParamUnion
	if p.System != "" {
		messages = append(messages, openai.SystemMessage(p.System))
	}
	messages = append(messages, openai.UserMessage(p.User))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai: request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAIAdapter) Available() bool {
	return o.APIKey != ""
}
