package completion

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type chat struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func newOpenAI(cfg *Config) *chat {
	oc := openai.DefaultConfig(cfg.Token)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return newChat(oc, cfg)
}

func newChat(oc openai.ClientConfig, cfg *Config) *chat {
	return &chat{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		temperature: cfg.TemperatureValue(),
		maxTokens:   cfg.MaxTokens,
	}
}

func (c *chat) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
