// Package app serves the Penguin Judge pages: the embedded templates and
// stylesheet plus the judge handler mounted under the app base path.
package app

import (
	"embed"
	"fmt"

	"github.com/JaimeStill/penguin/internal/config"
	"github.com/JaimeStill/penguin/internal/infrastructure"
	"github.com/JaimeStill/penguin/internal/judge"
	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/pkg/middleware"
	"github.com/JaimeStill/penguin/pkg/module"
	"github.com/JaimeStill/penguin/pkg/routes"
	"github.com/JaimeStill/penguin/pkg/session"
	"github.com/JaimeStill/penguin/pkg/web"
)

//go:embed layouts/*.html views/*.html static/*
var assets embed.FS

// Templates parses the layout and every judge view, with links rooted at
// basePath.
func Templates(basePath string) (*web.TemplateSet, error) {
	return web.NewTemplateSet(assets, assets, "layouts/*.html", "views", basePath, judge.Views())
}

// NewModule creates the app module. It starts the session sweeper on the
// infrastructure lifecycle.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	logger := infra.Logger.With("module", "app")

	pages, err := Templates(cfg.App.BasePath)
	if err != nil {
		return nil, fmt.Errorf("app templates: %w", err)
	}

	sessions := session.New[judge.State](&cfg.Session, logger)
	if err := sessions.Start(infra.Lifecycle); err != nil {
		return nil, fmt.Errorf("app sessions: %w", err)
	}

	handler := judge.NewHandler(
		mediation.New(infra.Completion, logger),
		sessions,
		pages,
		logger,
		judge.Options{
			MaxFormSize: cfg.App.MaxFormSizeBytes(),
			RevealDelay: cfg.App.RevealDelayDuration(),
		},
	)

	router := web.NewRouter()
	routes.Register(router, handler.Routes())
	router.Handle("GET /static/", web.DistServer(assets, "static", "/static"))
	router.SetFallback(handler.NotFound())

	m := module.New(cfg.App.BasePath, router)
	m.Use(middleware.Logger(logger))

	return m, nil
}
