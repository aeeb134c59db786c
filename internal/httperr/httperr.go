// Package httperr defines the two failure kinds the error translator renders:
// domain failures carrying a status code and validation failures carrying
// per-field violations.
package httperr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Detail)
}

func New(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

func NotFound(detail string) *Error {
	return New(http.StatusNotFound, detail)
}

func BadRequest(detail string) *Error {
	return New(http.StatusBadRequest, detail)
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated constraint in one request body.
// Body holds the decoded offending payload for API responses, nil otherwise.
type ValidationError struct {
	Violations []FieldViolation
	Body       any
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", e.Violations[0].Field, e.Violations[0].Message)
}

func Validation(violations []FieldViolation, body any) *ValidationError {
	return &ValidationError{Violations: violations, Body: body}
}
