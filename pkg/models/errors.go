package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

var ErrUnauthorized = errors.New("unauthorized")

var ErrSessionExpired = errors.New("session expired")

var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}

// DetectionError wraps a detection source failure. It is recovered inside
// the detector, which continues with the remaining sources; it never
// surfaces to the caller.
type DetectionError struct {
	Source string
	Err    error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("detection source %s failed: %v", e.Source, e.Err)
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}

func NewDetectionError(source string, err error) error {
	return &DetectionError{Source: source, Err: err}
}
