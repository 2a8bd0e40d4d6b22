package domain

import "errors"

var (
	// ErrValidation reports a malformed value record at construction time.
	ErrValidation = errors.New("validation failed")

	// ErrTimeout reports that an expected UI state never materialized
	// within the operation budget.
	ErrTimeout = errors.New("timed out")

	// ErrNotFound reports that a locator matched zero elements where
	// exactly one was required.
	ErrNotFound = errors.New("element not found")
)
