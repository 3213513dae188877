package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport wraps every failure where no HTTP response was received.
	ErrTransport = errors.New("transport failure")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// HTTPError describes a non-2xx response.
type HTTPError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	if e.kind != nil {
		return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, body)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Unwrap exposes the sentinel matching the status code, if any.
func (e *HTTPError) Unwrap() error {
	return e.kind
}
