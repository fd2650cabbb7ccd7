// Package apperr defines the error taxonomy shared by handlers and the
// terminal Fiber error handler. Every error carries the HTTP status it maps
// to so handlers never pick status codes ad hoc.
package apperr

import "github.com/gofiber/fiber/v2"

type Error struct {
	Status  int
	Message string
	// Details maps field name -> human readable message. Only set for
	// validation failures.
	Details map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Validation is a 400 with per-field details. First failing rule per field
// wins; callers pass the map produced by the validation package.
func Validation(details map[string]string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: "Validation failed", Details: details}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

// Unauthorized never carries details; auth failures stay generic so the API
// does not leak which part of the credential was wrong.
func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

// Conflict maps duplicate unique-key writes (slug, email) to 409.
func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

func RateLimited(message string) *Error {
	return New(fiber.StatusTooManyRequests, message)
}

// Config signals server misconfiguration (missing JWT secret, missing store
// connection string). Always a 500, distinct from client auth failures.
func Config(message string) *Error {
	return New(fiber.StatusInternalServerError, message)
}
