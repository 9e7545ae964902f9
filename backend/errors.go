package backend

import "errors"

var (
	// ErrUnknownBackend is returned by New for unregistered names.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrInvalidLength is returned when a backend cannot handle the
	// requested transform size.
	ErrInvalidLength = errors.New("backend: invalid length")

	// ErrInjected is returned by MockBackend for injected failures.
	ErrInjected = errors.New("backend: injected failure")
)
