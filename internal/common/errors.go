// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Local, field-scoped failures. Never sent to the network.
	ErrValidation = errors.New("validation error")

	// The request could not complete (connectivity, DNS, timeout, opaque body).
	ErrNetwork = errors.New("network error")

	// The request completed with a failure status or success:false.
	ErrServer = errors.New("server error")

	// A file fetch returned non-2xx or an empty body.
	ErrResource = errors.New("resource error")

	ErrNotFound = errors.New("not found")

	// Submission lifecycle.
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrAlreadySubmitted = errors.New("form already submitted")
)
