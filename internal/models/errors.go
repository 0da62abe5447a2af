package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for triple validation.
var (
	ErrMissingSource   = errors.New("source is required")
	ErrMissingTarget   = errors.New("target is required")
	ErrMissingRelation = errors.New("relation is required")
)

// ErrDepthTooLarge is returned when a requested traversal depth exceeds the configured cap.
var ErrDepthTooLarge = errors.New("depth exceeds maximum")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
