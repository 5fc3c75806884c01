package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that the backing store failed or an unexpected error occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the requested record is absent in storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a registration, id or query does not match the declared format.
	ErrBadParameter = "bad_parameter"
)

// MyError represents an error within the context of myregistry.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// newOrInner keeps an already classified inner error instead of reclassifying it.
func newOrInner(code string, message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}

	return NewMyError(code, message, inner)
}

func NewInternalServerError(message string, inner error) *MyError {
	return newOrInner(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	return newOrInner(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return newOrInner(ErrBadParameter, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a myregistry error, or nil if it is not one.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	if myErr := ToMyError(err); myErr != nil {
		return myErr.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	return err != nil && ToMyErrorCode(err) == code
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}
