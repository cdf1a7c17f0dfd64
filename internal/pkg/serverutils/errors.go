package serverutils

import (
	"errors"
	"fmt"
)

// Kind classifies application errors for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUpstreamUnavailable
)

// AppError carries a kind alongside the wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewUpstreamError(message string, err error) error {
	return &AppError{Kind: KindUpstreamUnavailable, Message: message, Err: err}
}

func NewInternalError(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the error kind, defaulting to internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message for an error.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
