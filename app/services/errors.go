package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Error is a client-facing failure. Controllers pass it to response.Fail,
// which uses Status as the HTTP status and Message as the envelope message.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string                   { return e.Message }
func (e *Error) StatusCode() int                 { return e.Status }
func (e *Error) FieldErrors() map[string]string { return e.Fields }

func BadRequest(msg string) *Error   { return &Error{Status: http.StatusBadRequest, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Status: http.StatusForbidden, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Status: http.StatusNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Status: http.StatusConflict, Message: msg} }

// Invalid reports a single field that failed a domain rule, rendered like a
// request validation failure (422 with an errors map).
func Invalid(field, msg string) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Fields:  map[string]string{field: msg},
	}
}

// IsStatus reports whether err is an *Error with the given status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

// notFound converts gorm.ErrRecordNotFound into a 404 with msg and passes
// every other error through.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(msg)
	}
	return err
}
