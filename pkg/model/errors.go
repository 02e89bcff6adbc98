package model

import "errors"

// Error taxonomy for the resolution and enhancement chains.
// None of these are fatal to a caller: every chain link recovers by moving
// to the next link or returning a low-confidence default.
var (
	// ErrNotFound means no candidate anywhere in the chain matched the query.
	ErrNotFound = errors.New("location not found")

	// ErrProviderUnavailable wraps network/HTTP failures from an external API.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrSchemaViolation means an AI response did not parse into the expected
	// JSON shape. Recovered by falling back, never by guessing fields.
	ErrSchemaViolation = errors.New("response schema violation")

	// ErrInvalidCoordinate means an out-of-range lat/lng was rejected before
	// reaching any guide.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
