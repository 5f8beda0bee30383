package store

import "fmt"

// ValidationError rejects a malformed or incomplete request. StatusCode is
// carried along because the original wire contract answers missing fields
// with 404 and malformed values with 400.
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(statusCode int, message string) *ValidationError {
	return &ValidationError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NotFoundError signals that an update or delete matched no document.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// UploadError wraps a media storage failure during report creation.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload failed: %s", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
