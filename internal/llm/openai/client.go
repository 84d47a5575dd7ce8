// Package openai adapts the OpenAI Chat Completions API to port.ChatCompleter.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"codedoc/internal/config"
	"codedoc/internal/port"
)

const defaultModel = "gpt-4o-mini"

var _ port.ChatCompleter = (*Client)(nil)

// Client calls the Chat Completions endpoint. It is safe for concurrent use.
type Client struct {
	client openai.Client
	model  string
}

// NewClient creates a chat client from the LLM config. The SDK's built-in retries
// are disabled: every upstream failure is terminal for the request.
func NewClient(cfg *config.LLMConfig) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout()),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) Complete(ctx context.Context, req port.ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case port.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case port.RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		default:
			return "", fmt.Errorf("unsupported chat role %q", m.Role)
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("calling openai chat completions: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
