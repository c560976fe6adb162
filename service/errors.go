package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation     = errors.New("failed validation")
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrContentTooLarge      = errors.New("content too large")
	ErrBadRequest           = errors.New("bad request")
	ErrDuplicateReview      = errors.New("duplicate review")
)

// validationError wraps a validator error map so that the handler layer can
// render field-level messages. It matches ErrFailedValidation under errors.Is.
type validationError struct {
	fields map[string]string
}

func (e validationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%q %s", k, e.fields[k]))
	}
	return strings.Join(msgs, "; ")
}

func (e validationError) Is(target error) bool {
	return target == ErrFailedValidation
}

// Fields returns the per-field validation messages.
func (e validationError) Fields() map[string]string {
	return e.fields
}

// failedValidation converts a validation error map into an error value.
func (s *service) failedValidation(errorMap map[string]string) error {
	return validationError{fields: errorMap}
}
