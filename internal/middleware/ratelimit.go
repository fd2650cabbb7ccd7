package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"foundation_api/internal/respond"
)

// Fixed-window limits, keyed by client IP. State is per-process; the counter
// internals are never exposed to clients.
const (
	LoginRateLimit    = 10
	LoginRateWindow   = 15 * time.Minute
	ContactRateLimit  = 20
	ContactRateWindow = 10 * time.Minute
)

func rateLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return respond.Error(c, fiber.StatusTooManyRequests, message, nil)
		},
	})
}

// LoginRateLimiter guards POST /api/auth/login.
func LoginRateLimiter() fiber.Handler {
	return rateLimiter(LoginRateLimit, LoginRateWindow,
		"Too many login attempts. Please try again in a few minutes.")
}

// ContactRateLimiter guards POST /api/contact.
func ContactRateLimiter() fiber.Handler {
	return rateLimiter(ContactRateLimit, ContactRateWindow,
		"Too many contact submissions. Please try again shortly.")
}
