package routes

import (
	"net/http"

	"github.com/JaimeStill/penguin/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler. OpenAPI is optional
// documentation picked up by Describe.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
