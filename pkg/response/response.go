// Package response writes the JSON envelope every endpoint returns:
//
//	{"statusCode": 200, "message": "...", "data": ..., "pagination": ..., "errors": ...}
//
// The HTTP status always equals statusCode.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

// Envelope is the body shape shared by every response.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *orm.Pagination   `json:"pagination,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// StatusError is implemented by errors that carry their own client status.
type StatusError interface {
	error
	StatusCode() int
}

// FieldError is a StatusError that also names the offending fields.
type FieldError interface {
	StatusError
	FieldErrors() map[string]string
}

// Write sends body with its StatusCode as the transport status.
func Write(w http.ResponseWriter, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.StatusCode)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// OK sends a 200 with data.
func OK(w http.ResponseWriter, message string, data interface{}) {
	Write(w, Envelope{StatusCode: http.StatusOK, Message: message, Data: data})
}

// Created sends a 201 with data.
func Created(w http.ResponseWriter, message string, data interface{}) {
	Write(w, Envelope{StatusCode: http.StatusCreated, Message: message, Data: data})
}

// Paginated sends a 200 list response with pagination metadata.
func Paginated(w http.ResponseWriter, message string, data interface{}, p orm.Pagination) {
	Write(w, Envelope{StatusCode: http.StatusOK, Message: message, Data: data, Pagination: &p})
}

// Error sends an envelope without data.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, Envelope{StatusCode: status, Message: message})
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	Write(w, Envelope{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Validation failed",
		Errors:     errs,
	})
}

// Fail maps err to an envelope. Errors implementing StatusError keep their
// status and message; anything else is logged and hidden behind a 500.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	var fe FieldError
	if errors.As(err, &fe) && len(fe.FieldErrors()) > 0 {
		Write(w, Envelope{StatusCode: fe.StatusCode(), Message: fe.Error(), Errors: fe.FieldErrors()})
		return
	}
	var se StatusError
	if errors.As(err, &se) {
		Error(w, se.StatusCode(), se.Error())
		return
	}

	logger.WithCtx(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error(),
	)
	InternalError(w)
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal Server Error")
}
