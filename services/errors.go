package services

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when an operation addresses an id that does not
// resolve to a stored record.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with ID: %d", e.Entity, e.ID)
}

// InvalidReferenceError is returned when a supplied box or transport
// reference does not resolve. The whole create/update is rejected.
type InvalidReferenceError struct {
	Entity string
	ID     uint
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("referenced %s not found with ID: %d", e.Entity, e.ID)
}

// ValidationError is returned when a required field is missing or malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidReference(err error) bool {
	var ir *InvalidReferenceError
	return errors.As(err, &ir)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
