// Package common defines shared constants and sentinel errors used across
// client and server layers of CertChain. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// ErrUnavailable marks a transport or non-2xx failure against the remote
	// API. The certificate service absorbs it into the local fallback path;
	// it never reaches the UI except through logs.
	ErrUnavailable = errors.New("server unavailable")

	// ErrValidation marks a missing required field, detected before any I/O.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate marks a certificateId collision in the server store. The
	// issuing service regenerates the identifier and retries.
	ErrDuplicate = errors.New("duplicate certificate id")
)
