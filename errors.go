package textwall

import "errors"

// Sentinel errors for profile validation. Construction fails fast on a
// misconfigured profile; every per-call operation on a valid profile is
// infallible.
var (
	// ErrNilProfile is returned when a nil profile is supplied.
	ErrNilProfile = errors.New("textwall: nil display profile")

	// ErrZeroWidth is returned when a profile declares a non-positive
	// display width.
	ErrZeroWidth = errors.New("textwall: display width must be positive")

	// ErrZeroLines is returned when a profile declares a non-positive
	// line budget.
	ErrZeroLines = errors.New("textwall: max lines must be positive")

	// ErrZeroChunkSize is returned when a profile declares a non-positive
	// BLE chunk size.
	ErrZeroChunkSize = errors.New("textwall: BLE chunk size must be positive")

	// ErrNilRenderFormula is returned when a profile has no glyph-unit to
	// pixel conversion formula.
	ErrNilRenderFormula = errors.New("textwall: render formula cannot be nil")

	// ErrNoFallbackWidth is returned when a profile declares a
	// non-positive Latin fallback width.
	ErrNoFallbackWidth = errors.New("textwall: latin max width must be positive")
)
