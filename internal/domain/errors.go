package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound: the referenced employee or supervisor does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey: employee number or email collides with another record.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrVersionConflict: the expected version no longer matches the stored
	// version. Recoverable: the caller should re-fetch and retry.
	ErrVersionConflict = errors.New("version conflict")
	// ErrCycleDetected: the proposed supervisor change would make the
	// employee transitively supervise itself.
	ErrCycleDetected = errors.New("supervision cycle detected")
	// ErrDependentsExist: the employee still has ACTIVE direct reports.
	ErrDependentsExist = errors.New("active dependents exist")
	// ErrIntegrityViolation: the stored supervision graph is corrupted.
	// Fatal; surfaced for operator attention, never auto-recovered.
	ErrIntegrityViolation = errors.New("hierarchy integrity violation")
	// ErrStorageUnavailable: the persistence layer is unreachable.
	// Retryable with backoff.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrValidation: the input failed validation.
	ErrValidation = errors.New("validation error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
