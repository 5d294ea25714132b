package mediation

import (
	"errors"
	"net/http"
)

// Domain errors for mediation requests.
var (
	ErrIncompleteReport = errors.New("please fill in all fields for both partners before asking the Penguin Judge")
	ErrInvalidOption    = errors.New("invalid option")
	ErrCompletionFailed = errors.New("the Penguin Judge could not reach a verdict")
	ErrEmptyVerdict     = errors.New("the Penguin Judge returned an empty verdict")
)

// MapHTTPStatus maps mediation domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrIncompleteReport), errors.Is(err, ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, ErrCompletionFailed), errors.Is(err, ErrEmptyVerdict):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
