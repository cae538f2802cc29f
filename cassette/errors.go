package cassette

import (
	"errors"
	"fmt"
)

// ErrInteractionNotFound indicates that a requested interaction has no
// matching fingerprint in the cassette.
var ErrInteractionNotFound = errors.New("cassette: requested interaction not found")

// ValidationError reports that an Interaction or Cassette was constructed
// with data that violates an invariant: a fingerprint that does not
// match its request, a non-contiguous chunk sequence, or an empty
// required field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cassette: validation failed: %s", e.Reason)
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// LoadError wraps the underlying cause of a failed CassetteStore.Load:
// missing storage in strict mode, unreadable storage, or malformed
// content.
type LoadError struct {
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cassette: load failed: %s", e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewLoadError wraps cause as a LoadError.
func NewLoadError(cause error) error {
	return &LoadError{Cause: cause}
}

// SaveError wraps the underlying cause of a failed CassetteStore.Save.
type SaveError struct {
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("cassette: save failed: %s", e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// NewSaveError wraps cause as a SaveError.
func NewSaveError(cause error) error {
	return &SaveError{Cause: cause}
}
