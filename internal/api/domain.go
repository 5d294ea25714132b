package api

import "github.com/JaimeStill/penguin/internal/mediation"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Mediation mediation.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Mediation: mediation.New(runtime.Completion, runtime.Logger),
	}
}
