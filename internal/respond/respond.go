// Package respond writes the {data, error} envelope every endpoint uses.
package respond

import "github.com/gofiber/fiber/v2"

type Envelope struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

type APIError struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Success writes a 2xx envelope with error: null.
func Success(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Data: data, Error: nil})
}

// Error writes a failure envelope with data: null.
func Error(c *fiber.Ctx, status int, message string, details map[string]string) error {
	return c.Status(status).JSON(Envelope{Data: nil, Error: &APIError{Message: message, Details: details}})
}
