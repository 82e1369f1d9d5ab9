package models

import (
	"errors"
	"fmt"
)

// ValidationError marks a request that can never succeed: bad input shape,
// a missing required field or an illegal state transition. It maps to a 400
// at the API boundary and is never retried by batch jobs.
type ValidationError struct {
	message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.message
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// ErrAlreadyJournalfort guards at-most-once archival per vurdering.
var ErrAlreadyJournalfort = errors.New("vurdering already has a journalpostId")

// ErrVarselAlreadyPublished guards the once-only varsel publish transitions.
var ErrVarselAlreadyPublished = errors.New("varsel already published")
