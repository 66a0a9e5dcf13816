// Package common defines shared constants and sentinel errors used across
// client and server layers of Whisper Note. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors. An expired message is reported as not found;
	// the two cases are deliberately indistinguishable to callers.
	ErrorNotFound = errors.New("not found")

	// Validation errors (user-correctable, surfaced verbatim).
	ErrorContentRejected = errors.New("message contains prohibited words")

	// Administrative sweep errors.
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorMisconfigured = errors.New("sweep secret is not configured")

	// External dependency failures.
	ErrorGenerationFailed = errors.New("message generation failed")
	ErrorStoreUnavailable = errors.New("store unavailable")

	// Internal flow control; never exposed verbatim to end users.
	ErrorInternal = errors.New("internal error")

	// Unlock token errors (invalid, malformed, or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
