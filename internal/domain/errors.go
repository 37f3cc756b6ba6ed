package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Exchange lifecycle conflicts. Each one also matches ErrConflict.
var (
	ErrInvalidState             = &conflictError{msg: "invalid exchange state"}
	ErrInsufficientParticipants = &conflictError{msg: "insufficient participants"}
	ErrAlreadyStarted           = &conflictError{msg: "exchange already started"}
	ErrNotStarted               = &conflictError{msg: "exchange not started"}
)

type conflictError struct {
	msg string
}

func (e *conflictError) Error() string { return e.msg }

func (e *conflictError) Unwrap() error { return ErrConflict }

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

// StateError reports a lifecycle operation attempted from the wrong status.
type StateError struct {
	Op      string
	Current ExchangeStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: exchange is %s", e.Op, e.Current)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// NewStateError creates a StateError for op with the exchange's current status.
func NewStateError(op string, current ExchangeStatus) *StateError {
	return &StateError{Op: op, Current: current}
}

// InsufficientParticipantsError is returned when an exchange is started with
// fewer than MinParticipants members.
type InsufficientParticipantsError struct {
	Count int
}

func (e *InsufficientParticipantsError) Error() string {
	return fmt.Sprintf("insufficient participants: have %d, need at least %d", e.Count, MinParticipants)
}

func (e *InsufficientParticipantsError) Unwrap() error { return ErrInsufficientParticipants }
