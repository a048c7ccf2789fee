package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every "referenced entity or file is absent" error.
var ErrNotFound = errors.New("not found")

var (
	ErrBlogNotFound   = fmt.Errorf("blog %w", ErrNotFound)
	ErrUploadNotFound = fmt.Errorf("upload %w", ErrNotFound)
)

// ValidationError reports malformed or missing client input.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches validation errors by code.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewValidationError creates a ValidationError.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

var (
	ErrNoFile         = NewValidationError("no_file", "No image provided")
	ErrEmptyFilename  = NewValidationError("empty_filename", "No selected file")
	ErrDisallowedType = NewValidationError("disallowed_type", "File type not allowed")
	ErrInvalidBody    = NewValidationError("invalid_body", "Invalid request body")
)

// IsNotFound reports whether err signals an absent entity or file.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
