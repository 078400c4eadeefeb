package client

import "errors"

var (
	// ErrUnavailable means the request could not complete at the transport
	// level; the server was never reached or the response never arrived.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers rejected credentials and missing/invalid tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation is a 4xx rejection of the submitted fields.
	ErrValidation = errors.New("validation failed")

	// ErrServer is any other non-2xx response.
	ErrServer = errors.New("server error")
)
