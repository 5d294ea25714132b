// Package api assembles the JSON API module: the verdicts domain, its OpenAPI
// document, and a JSON not-found response for unmatched paths.
package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/penguin/internal/config"
	"github.com/JaimeStill/penguin/internal/infrastructure"
	"github.com/JaimeStill/penguin/pkg/handlers"
	"github.com/JaimeStill/penguin/pkg/middleware"
	"github.com/JaimeStill/penguin/pkg/module"
)

// ErrRouteNotFound is returned for paths under the API prefix that match no route.
var ErrRouteNotFound = errors.New("route not found")

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondError(w, runtime.Logger, http.StatusNotFound, ErrRouteNotFound)
	})

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
