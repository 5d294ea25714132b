// Package completion calls an external large-language-model chat completion
// service with a system instruction and a user message.
package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrUnknownProvider indicates an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown completion provider")
	// ErrEmptyResponse indicates the service answered without any content.
	ErrEmptyResponse = errors.New("completion response contained no content")
)

// Client sends one system + user exchange and returns the model's reply.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Func adapts a plain function to Client.
type Func func(ctx context.Context, system, user string) (string, error)

// Complete calls f.
func (f Func) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

// New builds the provider client named by cfg.Provider, wrapped with the
// configured concurrency limit and per-call timeout. cfg must be finalized.
func New(cfg *Config, logger *slog.Logger) (Client, error) {
	var (
		c   Client
		err error
	)

	switch cfg.Provider {
	case ProviderOpenAI:
		c = newOpenAI(cfg)
	case ProviderAzure:
		c, err = newAzure(cfg)
	case ProviderGemini:
		c, err = newGemini(context.Background(), cfg)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger = logger.With(
		"system", "completion",
		"provider", cfg.Provider,
		"model", cfg.Model,
	)

	return Limit(c, cfg.MaxConcurrent, cfg.TimeoutDuration(), logger), nil
}
