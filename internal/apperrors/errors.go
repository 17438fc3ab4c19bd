package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota // missing or empty required field
	Conflict               // duplicate username
	Auth                   // bad credentials, missing/invalid token
	NotFound               // unknown todo id
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Status maps an error to its HTTP status and response message. Anything
// outside the taxonomy becomes a generic 500 with no detail leaked.
func Status(err error) (int, string) {
	var appErr *Error

	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "internal server error"
	}

	switch appErr.Kind {
	case Validation:
		return http.StatusBadRequest, appErr.Message
	case Conflict:
		return http.StatusConflict, appErr.Message
	case Auth:
		return http.StatusUnauthorized, appErr.Message
	case NotFound:
		return http.StatusNotFound, appErr.Message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
