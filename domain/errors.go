package domain

import (
	"fmt"
	"strings"
)

// Error codes for domain errors
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeFileNotFound  = "FILE_NOT_FOUND"
	ErrCodeConfigError   = "CONFIG_ERROR"
	ErrCodeToolFailure   = "TOOL_FAILURE"
	ErrCodeUnsupported   = "UNSUPPORTED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// AllAdaptersFailedMessage is the fixed message of the orchestration
// error returned when every resolved adapter failed during measurement.
const AllAdaptersFailedMessage = "all adapters failed during measurement"

// DomainError represents a structured error with an error code
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a domain error with an explicit code
func NewDomainError(code, message string, cause error) error {
	return DomainError{Code: code, Message: message, Cause: cause}
}

// NewInvalidInputError creates an error for invalid user input
func NewInvalidInputError(message string, cause error) error {
	return DomainError{Code: ErrCodeInvalidInput, Message: message, Cause: cause}
}

// NewFileNotFoundError creates an error for a missing file or directory
func NewFileNotFoundError(path string, cause error) error {
	return DomainError{Code: ErrCodeFileNotFound, Message: fmt.Sprintf("file not found: %s", path), Cause: cause}
}

// NewConfigError creates an error for configuration problems
func NewConfigError(message string, cause error) error {
	return DomainError{Code: ErrCodeConfigError, Message: message, Cause: cause}
}

// NewToolFailureError creates an error for a failed external tool run
func NewToolFailureError(message string, cause error) error {
	return DomainError{Code: ErrCodeToolFailure, Message: message, Cause: cause}
}

// NewUnsupportedError creates an error for unsupported formats or axes
func NewUnsupportedError(message string, cause error) error {
	return DomainError{Code: ErrCodeUnsupported, Message: message, Cause: cause}
}

// AdapterError describes a single adapter's measurement failure.
type AdapterError struct {
	AdapterID string
	Message   string
	Cause     error
}

// Error implements the error interface
func (e AdapterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.AdapterID, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.AdapterID, e.Message)
}

// Unwrap returns the underlying cause
func (e AdapterError) Unwrap() error {
	return e.Cause
}

// AxisError ties an adapter failure to the axis it was measuring.
type AxisError struct {
	Axis      Axis
	AdapterID string
	Err       error
}

// Error implements the error interface
func (e AxisError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Axis, e.AdapterID, e.Err)
}

// Unwrap returns the underlying error
func (e AxisError) Unwrap() error {
	return e.Err
}

// OrchestrationError is the terminal failure of a measurement run: no
// axis produced a result. AxisErrors enumerates the per-axis adapter
// failures that contributed, and is empty when the run failed because no
// adapter was available at all.
type OrchestrationError struct {
	Message    string
	AxisErrors []AxisError
}

// Error implements the error interface
func (e *OrchestrationError) Error() string {
	if len(e.AxisErrors) == 0 {
		return e.Message
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	sb.WriteString(":")
	for _, ae := range e.AxisErrors {
		sb.WriteString("\n  ")
		sb.WriteString(ae.Error())
	}
	return sb.String()
}

// Unwrap returns the first axis error for errors.Is/As compatibility
func (e *OrchestrationError) Unwrap() error {
	if len(e.AxisErrors) == 0 {
		return nil
	}
	return e.AxisErrors[0].Err
}
