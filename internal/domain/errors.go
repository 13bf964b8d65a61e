package domain

import "errors"

var (
	// ErrNotFound is returned when a mutation targets an article the store does not hold.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable wraps any network or HTTP failure of a collaborator.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedResponse marks a collaborator reply of unexpected shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation error")
)

// ErrSuperseded is returned to a caller whose fetch was overtaken by a newer
// filter change. Its result is discarded.
var ErrSuperseded = errors.New("superseded by a newer filter")
