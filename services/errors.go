package services

import "errors"

// Service-level sentinel errors.
var (
	// ErrPassInProgress is returned when a reorder pass is triggered while
	// another pass is still running.
	ErrPassInProgress = errors.New("reorder pass already in progress")

	// ErrNegativeWindow is returned for a negative resupply window.
	ErrNegativeWindow = errors.New("window days must not be negative")
)
