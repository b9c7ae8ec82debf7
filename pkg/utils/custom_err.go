package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidOAuthState  = errors.New("invalid oauth state")
	ErrUnverifiedEmail    = errors.New("google email not verified")
	ErrSelectionFinalized = errors.New("selection already finalized")
	ErrInvalidSelection   = errors.New("invalid selection")
)

// ValidationError reports a trip request field the caller must fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Missing required fields: " + field}
}

func NewInvalidFieldError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("Invalid %s: %s", field, reason)}
}

// GenerationError wraps any failure of the upstream text-generation call.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate itinerary from %s: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ResponseFormatError means the completion was not a single JSON object.
// Raw is kept for server-side diagnostics and is never part of Error().
type ResponseFormatError struct {
	Raw string
	Err error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("generation service returned malformed JSON: %v", e.Err)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

// SchemaMismatchError means the completion parsed but lacks the itinerary shape.
type SchemaMismatchError struct {
	Field  string
	Reason string
	Raw    string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("itinerary response does not match schema: %s %s", e.Field, e.Reason)
}
