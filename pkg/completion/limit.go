package completion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"
)

type limited struct {
	next    Client
	sem     *semaphore.Weighted
	timeout time.Duration
	logger  *slog.Logger
}

// Limit wraps c so that at most maxConcurrent calls are in flight and each
// call is bounded by timeout. A non-positive timeout leaves the caller's
// context deadline as the only bound.
func Limit(c Client, maxConcurrent int, timeout time.Duration, logger *slog.Logger) Client {
	return &limited{
		next:    c,
		sem:     semaphore.NewWeighted(int64(max(maxConcurrent, 1))),
		timeout: timeout,
		logger:  logger,
	}
}

func (l *limited) Complete(ctx context.Context, system, user string) (string, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("wait for completion slot: %w", err)
	}
	defer l.sem.Release(1)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := l.next.Complete(ctx, system, user)
	if err != nil {
		l.logger.ErrorContext(ctx, "completion failed", "duration", time.Since(start), "error", err)
		return "", err
	}

	l.logger.InfoContext(ctx, "completion received", "duration", time.Since(start), "chars", len(text))
	return text, nil
}
