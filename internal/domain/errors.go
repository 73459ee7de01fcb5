package domain

import "errors"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// ValidationError reports a single rejected request field. Validators check
// fields in a fixed order and stop at the first failure, so one field and one
// message fully describe the rejection. The message is a fixed human-readable
// string such as "Invalid Todo Status" and is returned to the client verbatim.
//
// Location names where the rejected value came from ("body", "query", "path").
// Parsers leave it empty; the transport layer sets it via LocateValidation,
// and an empty location is reported as "body".
//
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr)
// to access the failing field name.
type ValidationError struct {
	Field    string
	Message  string
	Location string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field with the
// given fixed message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// LocateValidation sets the location on the ValidationError carried by err,
// if any, and returns err unchanged otherwise. Every ValidationError is a
// freshly allocated value, so setting the location in place is safe.
func LocateValidation(err error, location string) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		verr.Location = location
	}

	return err
}
