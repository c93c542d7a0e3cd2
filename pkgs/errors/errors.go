// Package errors defines the structured error values raised while converting
// a type-in listing. Every error the core can produce carries a type
// constant plus enough context (usually a line number) for the CLI to report
// where in the listing the typist went wrong.
package errors

import (
	"fmt"
	"strings"
)

// Error types for the conversion pipeline
const (
	// Listing validation errors
	ErrMissingLineNumber = "MISSING_LINE_NUMBER_ERROR"
	ErrLineSequence      = "LINE_SEQUENCE_ERROR"
	ErrLooseBrace        = "LOOSE_BRACE_ERROR"

	// Configuration errors
	ErrUnsupportedFormat = "UNSUPPORTED_FORMAT_ERROR"

	// I/O errors raised by the CLI collaborators
	ErrInputRead   = "INPUT_READ_ERROR"
	ErrOutputWrite = "OUTPUT_WRITE_ERROR"
)

// ConvertError represents a structured error with type and context
type ConvertError struct {
	Type    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *ConvertError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// New creates a new ConvertError
func New(errorType, message string) *ConvertError {
	return &ConvertError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap creates a new ConvertError wrapping an existing error
func Wrap(errorType, message string, cause error) *ConvertError {
	return &ConvertError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *ConvertError) WithContext(key string, value interface{}) *ConvertError {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *ConvertError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType string) bool {
	if convErr, ok := err.(*ConvertError); ok {
		return convErr.Type == errorType
	}
	return false
}

// Line returns the listing line number attached to an error, if any.
func Line(err error) (int, bool) {
	convErr, ok := err.(*ConvertError)
	if !ok {
		return 0, false
	}
	value, ok := convErr.Context["line"]
	if !ok {
		return 0, false
	}
	line, ok := value.(int)
	return line, ok
}

// Helper functions for the conversion error kinds

// NewMissingLineNumberError reports a line with no leading line number.
// afterLine is the last line number parsed successfully, or 0 if none.
func NewMissingLineNumberError(afterLine int) *ConvertError {
	msg := fmt.Sprintf("entry error after line %d - each line should start with a line number", afterLine)
	return New(ErrMissingLineNumber, msg).WithContext("line", afterLine)
}

// NewSequenceError reports an out-of-order line number. line is the number
// of the entry that breaks the ascending sequence.
func NewSequenceError(line int) *ConvertError {
	msg := fmt.Sprintf("entry error after line %d - lines should be in sequential order", line)
	return New(ErrLineSequence, msg).WithContext("line", line)
}

// NewLooseBraceError reports an unmatched or misplaced brace/bracket on the
// given line.
func NewLooseBraceError(line int) *ConvertError {
	msg := fmt.Sprintf("loose brace/bracket error in line %d - special characters should be enclosed in braces or brackets", line)
	return New(ErrLooseBrace, msg).WithContext("line", line)
}

// NewUnsupportedFormatError reports a magazine source format with no defined
// checksum/normalization rules.
func NewUnsupportedFormatError(format string, supported []string) *ConvertError {
	msg := fmt.Sprintf("magazine format %q not supported - choose from '%s'", format, strings.Join(supported, "', '"))
	return New(ErrUnsupportedFormat, msg).
		WithContext("format", format).
		WithContext("supported", supported)
}
