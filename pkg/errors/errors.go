// Package errors provides custom error types for the fieldline system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the fieldline system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a record already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrAPIKeyInvalid indicates that the provided API key is invalid
	ErrAPIKeyInvalid = errors.New("API key invalid")

	// ErrStoreUnavailable indicates that the record store is temporarily unavailable
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrReadOnly indicates an attempt to modify a read-only store
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Object string
	ID     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Object, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(object, id string) *NotFoundError {
	return &NotFoundError{Object: object, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// StoreError represents a failed query or submit against the record store.
// It carries the store's own diagnostic payload unmodified.
type StoreError struct {
	Op         string // "query" or "submit"
	Object     string // object type the call addressed
	Mode       string // submit mode, empty for queries
	StatusCode int    // HTTP status for remote stores, 0 otherwise
	Code       string // platform error code, e.g. "required_field_missing"
	Message    string
	Err        error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Mode != "" {
		return fmt.Sprintf("store %s %s %s failed: %s", e.Op, e.Mode, e.Object, e.Message)
	}
	return fmt.Sprintf("store %s %s failed: %s", e.Op, e.Object, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StoreError) Is(target error) bool {
	if e.StatusCode == 404 {
		return target == ErrNotFound
	}
	if e.StatusCode == 429 {
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 {
		return target == ErrStoreUnavailable
	}
	return false
}

// NewStoreError creates a new StoreError
func NewStoreError(op, object, mode string, err error) *StoreError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StoreError{
		Op:      op,
		Object:  object,
		Mode:    mode,
		Message: message,
		Err:     err,
	}
}

// BatchError reports which record of a submitted batch was rejected.
// The store applies batches whole, so a BatchError means nothing was written.
type BatchError struct {
	Object string
	Mode   string
	Index  int
	Err    error
}

// Error implements the error interface
func (e *BatchError) Error() string {
	return fmt.Sprintf("%s %s batch failed at record %d: %v", e.Mode, e.Object, e.Index, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *BatchError) Unwrap() error {
	return e.Err
}

// NewBatchError creates a new BatchError
func NewBatchError(object, mode string, index int, err error) *BatchError {
	return &BatchError{Object: object, Mode: mode, Index: index, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// AuthenticationError represents an authentication/authorization error
type AuthenticationError struct {
	Method  string // "api_key", "bearer", "header", etc.
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAPIKeyRequired || target == ErrAPIKeyInvalid
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(method, message string, err error) *AuthenticationError {
	return &AuthenticationError{
		Method:  method,
		Message: message,
		Err:     err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAPIKeyError checks if an error is related to API keys
func IsAPIKeyError(err error) bool {
	return errors.Is(err, ErrAPIKeyRequired) || errors.Is(err, ErrAPIKeyInvalid)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsStoreUnavailable checks if an error indicates store unavailability
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsReadOnly checks if an error is a read-only store rejection
func IsReadOnly(err error) bool {
	return errors.Is(err, ErrReadOnly)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapStore wraps an error as a StoreError
func WrapStore(op, object, mode string, err error) error {
	if err == nil {
		return nil
	}
	return NewStoreError(op, object, mode, err)
}
