package domain

import "errors"

var (
	// ErrEmptyLocation is returned when the requested location is blank
	ErrEmptyLocation = errors.New("location is empty")

	// ErrLocationNotFound is returned when geocoding yields no result
	ErrLocationNotFound = errors.New("location not found")

	// ErrUpstreamUnavailable wraps any failure talking to the weather APIs
	ErrUpstreamUnavailable = errors.New("upstream weather service unavailable")
)
