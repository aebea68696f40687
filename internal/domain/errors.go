package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, non-positive people count).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNotConfigured is returned when a required dependency (storage) has no
// configured connection target. Handlers should map this to HTTP 503.
// It is detectable at construction time, before any operation is attempted.
var ErrNotConfigured = errors.New("storage not configured")

// ErrTourNotBookable is returned by the booking workflow when the submitted
// tour id does not denote an active tour. Handlers should map this to HTTP 400:
// the caller supplied a reference that is not currently bookable.
var ErrTourNotBookable = errors.New("tour not found or not active")
