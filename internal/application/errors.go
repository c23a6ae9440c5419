package application

import (
	"errors"

	"github.com/linskybing/formbuilder/internal/validation"
)

// Failure taxonomy: validation (400 + details), not-found (404 + message),
// everything else is unexpected (500, generic body, detail logged).
var (
	ErrFormNotFound       = errors.New("Form not found")
	ErrSubmissionNotFound = errors.New("Submission not found")
)

// ValidationError carries the collected per-field failures of a payload.
type ValidationError struct {
	Details []validation.FieldError
}

func (e *ValidationError) Error() string {
	return "Validation error"
}
