// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, lifecycle, completion) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/penguin/internal/config"
	"github.com/JaimeStill/penguin/pkg/completion"
	"github.com/JaimeStill/penguin/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, and the completion client.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Completion completion.Client
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewWithLogger(cfg, logger)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	client, err := completion.New(&cfg.Agent, logger)
	if err != nil {
		return nil, fmt.Errorf("completion init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:  lifecycle.New(),
		Logger:     logger,
		Completion: client,
	}, nil
}

// Start registers infrastructure readiness with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		i.Logger.Info("completion client ready")
	})
	return nil
}
