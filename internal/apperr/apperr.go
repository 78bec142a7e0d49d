// Package apperr defines the error taxonomy every layer maps into: validation
// failures, missing resources, uniqueness conflicts, auth rejections and an
// unavailable store. Handlers translate these categories to HTTP statuses in
// one place instead of deciding codes inline.
package apperr

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries field-level messages for a client-fixable request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	// Map iteration order is random; sort for stable messages.
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// Validation builds a ValidationError from field/message pairs.
func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// ValidationMsg builds a single-message ValidationError not tied to a field.
func ValidationMsg(msg string) error {
	return &ValidationError{Fields: map[string]string{"_": msg}}
}

type wrapped struct {
	kind error
	msg  string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.kind }

// NotFound returns an ErrNotFound with a caller-facing message.
func NotFound(msg string) error { return &wrapped{ErrNotFound, msg} }

// Conflict returns an ErrConflict with a caller-facing message.
func Conflict(msg string) error { return &wrapped{ErrConflict, msg} }

// Unauthorized returns an ErrUnauthorized with a caller-facing message.
func Unauthorized(msg string) error { return &wrapped{ErrUnauthorized, msg} }

// StoreUnavailable returns an ErrStoreUnavailable with a caller-facing message.
func StoreUnavailable(msg string) error { return &wrapped{ErrStoreUnavailable, msg} }

// Status maps an error to its HTTP status code. Anything unclassified is a
// server fault.
func Status(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromStatus maps an HTTP status back to the matching category. The API
// client uses it so cache consumers can test categories with errors.Is.
func FromStatus(status int, msg string) error {
	switch {
	case status == http.StatusNotFound:
		return NotFound(msg)
	case status == http.StatusConflict:
		return Conflict(msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Unauthorized(msg)
	case status == http.StatusServiceUnavailable:
		return StoreUnavailable(msg)
	case status == http.StatusBadRequest:
		return ValidationMsg(msg)
	default:
		return errors.New(msg)
	}
}
