package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/penguin/internal/config"
	"github.com/JaimeStill/penguin/internal/verdicts"
	"github.com/JaimeStill/penguin/pkg/openapi"
	"github.com/JaimeStill/penguin/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	groups := []routes.Group{
		verdicts.NewHandler(
			domain.Mediation,
			runtime.Logger,
			runtime.MaxBodySize,
		).Routes(),
	}

	routes.Register(mux, groups...)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	routes.Describe(spec, groups...)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}
	mux.HandleFunc("GET "+cfg.API.OpenAPI.Path, openapi.ServeSpec(specBytes))

	return nil
}
