package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

const claudeMaxTokens = 4096

// ClaudeAdapter connects to the Anthropic Messages API.
type ClaudeAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func (c *ClaudeAdapter) Name() string {
	return fmt.Sprintf("Claude (%s)", c.Model)
}

func (c *ClaudeAdapter) Generate(ctx context.Context, p prompt.Payload) (string, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(c.APIKey),
		option.WithMaxRetries(0),
	}
	if c.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(c.BaseURL))
	}
	if c.Client != nil {
		opts = append(opts, option.WithHTTPClient(c.Client))
	}
	client := anthropic.NewClient(opts...)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.Model),
		MaxTokens: claudeMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
		},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}

	msg, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude: request: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("claude: empty response content")
	}

	var result strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			result.WriteString(block.Text)
		}
	}

	return strings.TrimSpace(result.String()), nil
}

func (c *ClaudeAdapter) Available() bool {
	return c.APIKey != ""
}
