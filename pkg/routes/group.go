package routes

import (
	"net/http"

	"github.com/JaimeStill/penguin/pkg/openapi"
)

// Mux is satisfied by *http.ServeMux and *web.Router.
type Mux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Group organizes routes under a common prefix. Children inherit the prefix.
// Schemas are component schemas referenced by the group's operations.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
	Schemas  map[string]*openapi.Schema
}

// Register adds every route in groups to mux as "METHOD prefix+pattern".
func Register(mux Mux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

func registerGroup(mux Mux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+fullPrefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}

// Describe adds every documented route in groups to spec, along with each
// group's component schemas. Routes without an OpenAPI operation are skipped.
func Describe(spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		describeGroup(spec, "", group)
	}
}

func describeGroup(spec *openapi.Spec, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	if group.Schemas != nil {
		spec.Components.AddSchemas(group.Schemas)
	}
	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}
		spec.AddOperation(fullPrefix+route.Pattern, route.Method, route.OpenAPI)
	}
	for _, child := range group.Children {
		describeGroup(spec, fullPrefix, child)
	}
}
