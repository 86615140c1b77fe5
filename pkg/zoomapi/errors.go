package zoomapi

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/oszoom/pkg/binding"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// Error is an API error with its HTTP status and a stable code.
type Error struct {
	Status int
	Code   string
	Msg    string
}

func (e Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return http.StatusText(e.Status)
}

// WithMessage returns a copy of e carrying msg.
func (e Error) WithMessage(msg string) Error {
	e.Msg = msg
	return e
}

var (
	ErrBadRequest       = Error{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrNotFound         = Error{Status: http.StatusNotFound, Code: "not_found"}
	ErrSessionNotFound  = Error{Status: http.StatusNotFound, Code: "session_not_found"}
	ErrUnprocessable    = Error{Status: http.StatusUnprocessableEntity, Code: "unprocessable_entity"}
	ErrTooManySessions  = Error{Status: http.StatusServiceUnavailable, Code: "too_many_sessions"}
	ErrSessionDisposed  = Error{Status: http.StatusGone, Code: "session_disposed"}
	ErrInternal         = Error{Status: http.StatusInternalServerError, Code: "internal_error"}
	ErrMethodNotAllowed = Error{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
)

// toAPIError maps domain errors onto API errors. Unknown errors become
// ErrInternal without leaking their text.
func toAPIError(err error) Error {
	var apiErr Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, zoom.ErrZoomOutOfRange), errors.Is(err, zoom.ErrUnknownOS):
		return ErrUnprocessable.WithMessage(err.Error())
	case errors.Is(err, zoom.ErrUnknownPreset):
		return ErrNotFound.WithMessage(err.Error())
	case errors.Is(err, binding.ErrDisposed):
		return ErrSessionDisposed
	default:
		return ErrInternal
	}
}
