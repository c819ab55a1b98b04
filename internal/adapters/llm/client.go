// Package llm wraps the OpenAI chat-completion API behind the
// ports.ChatCompleter interface, so the summarizer and copy generator can
// be tested against fakes.
package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"copygen/internal/core/ports"
)

const defaultModel = "gpt-4o-mini"

// Client is a thin chat-completion client. One instance is shared across
// calls; it holds no mutable state.
type Client struct {
	api   openai.Client
	model string
}

// NewClient creates a Client for the given API key. An empty model selects
// the default.
func NewClient(apiKey, model string, opts ...option.RequestOption) *Client {
	if model == "" {
		model = defaultModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		api:   openai.NewClient(opts...),
		model: model,
	}
}

// Complete issues one bounded chat-completion call and returns the trimmed
// response text.
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Model:       c.model,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("model returned empty content")
	}
	return text, nil
}
