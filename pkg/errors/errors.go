package errors

import (
	"errors"
	"fmt"
)

// Error codes for the failure taxonomy of the player. None of them is fatal:
// callers log the code and degrade.
const (
	CodeMediaLoad     = "MEDIA_LOAD_FAILURE"
	CodeStorage       = "STORAGE_FAILURE"
	CodeInvalidTarget = "INVALID_TARGET"
	CodePrefetch      = "PREFETCH_FAILURE"
	CodeSource        = "SOURCE_FAILURE"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrMediaLoad    = errors.New("media failed to load")
	ErrStorage      = errors.New("seen storage unavailable")
	ErrClosed       = errors.New("player closed")

	// ErrInvalidTarget is a missing user or story; it matches ErrNotFound.
	ErrInvalidTarget = fmt.Errorf("target does not exist: %w", ErrNotFound)
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Storage tags err as a StorageFailure.
func Storage(err error, message string) error {
	return WrapWithCode(fmt.Errorf("%w: %w", ErrStorage, err), CodeStorage, message)
}

// MediaLoad tags err as a MediaLoadFailure.
func MediaLoad(err error, storyID string) error {
	return WrapWithCode(fmt.Errorf("%w: %w", ErrMediaLoad, err), CodeMediaLoad, "story "+storyID)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorage returns true if the error came from the seen storage.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsMediaLoad returns true if the error is a media load failure.
func IsMediaLoad(err error) bool {
	return errors.Is(err, ErrMediaLoad)
}
