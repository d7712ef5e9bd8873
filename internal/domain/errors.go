package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound is returned when no user document matches a lookup.
	ErrNotFound = errors.New("not found")

	// ErrUpdateFailed is returned when an update matched a document earlier
	// in the flow but reported zero modified documents. This happens when the
	// document was deleted or changed between the read and the write; the
	// window is documented and not retried.
	ErrUpdateFailed = errors.New("update failed")
)
