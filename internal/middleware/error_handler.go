package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"foundation_api/internal/apperr"
	"foundation_api/internal/respond"
)

// ErrorHandler is the terminal Fiber error handler. It translates apperr and
// fiber errors into the standard envelope and logs 5xx-class errors. Internal
// messages never reach the client for 5xx responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Status >= fiber.StatusInternalServerError {
			log.Printf("%s %s -> %d: %v", c.Method(), c.Path(), ae.Status, err)
		}
		return respond.Error(c, ae.Status, ae.Message, ae.Details)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		message := fe.Message
		if fe.Code >= fiber.StatusInternalServerError {
			log.Printf("%s %s -> %d: %v", c.Method(), c.Path(), fe.Code, err)
			message = "Internal server error."
		}
		return respond.Error(c, fe.Code, message, nil)
	}

	log.Printf("%s %s -> unhandled: %v", c.Method(), c.Path(), err)
	return respond.Error(c, fiber.StatusInternalServerError, "Internal server error.", nil)
}
