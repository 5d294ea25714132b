package mediation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/penguin/pkg/completion"
)

// System defines the public contract for hearing a conflict report.
type System interface {
	// Deliberate normalizes and validates r, then returns the model's raw
	// markdown verdict. An invalid report never reaches the completion service.
	Deliberate(ctx context.Context, r Report) (string, error)
}

type mediator struct {
	client completion.Client
	logger *slog.Logger
}

// New creates a System backed by client.
func New(client completion.Client, logger *slog.Logger) System {
	return &mediator{
		client: client,
		logger: logger.With("system", "mediation"),
	}
}

func (m *mediator) Deliberate(ctx context.Context, r Report) (string, error) {
	if err := r.Normalize(); err != nil {
		return "", err
	}
	if err := r.Validate(); err != nil {
		return "", err
	}

	text, err := m.client.Complete(ctx, SystemPrompt, UserPrompt(r))
	if err != nil {
		if errors.Is(err, completion.ErrEmptyResponse) {
			return "", ErrEmptyVerdict
		}
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyVerdict
	}

	m.logger.InfoContext(ctx, "verdict reached",
		"stage", r.Stage,
		"severity", r.Severity,
		"tone", r.Tone,
	)
	return text, nil
}
