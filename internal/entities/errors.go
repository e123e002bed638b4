// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTransientStore classifies connectivity-level store failures
	// that are expected to resolve on retry.
	ErrTransientStore = errors.New("transient store failure")
	// ErrFatalStore classifies constraint, syntax and serialization
	// failures that must never be retried.
	ErrFatalStore = errors.New("fatal store failure")
)

// Transient marks err as a retryable connectivity failure.
func Transient(err error) error {
	return fmt.Errorf("%w: %w", ErrTransientStore, err)
}

// Fatal marks err as a non-retryable store failure.
func Fatal(err error) error {
	return fmt.Errorf("%w: %w", ErrFatalStore, err)
}

// IsTransient reports whether err is classified as retryable.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientStore)
}
