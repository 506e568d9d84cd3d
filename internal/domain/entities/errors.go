package entities

import "fmt"

// ValidationError reports malformed or out-of-range input. Field always names
// the offending attribute so the API layer can point at it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError reports an operation disallowed by the estimate's current
// status. It is a precondition failure, never fatal.
type InvalidStateError struct {
	Operation string
	Status    EstimateStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s estimate in status %s", e.Operation, e.Status)
}

func NewInvalidStateError(operation string, status EstimateStatus) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

// ConflictError reports a write that lost to a concurrent one: an estimate
// number collision during issuance, or a version mismatch on save.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}
