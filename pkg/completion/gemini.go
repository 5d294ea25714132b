package completion

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type gemini struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

func newGemini(ctx context.Context, cfg *Config) (Client, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.Token,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &gemini{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.TemperatureValue(),
		maxTokens:   int32(cfg.MaxTokens),
	}, nil
}

func (g *gemini) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
		MaxOutputTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
