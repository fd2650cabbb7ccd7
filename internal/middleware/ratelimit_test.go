package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundation_api/internal/respond"
)

func TestLoginRateLimiter(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/auth/login", LoginRateLimiter(), func(c *fiber.Ctx) error {
		return respond.Success(c, fiber.StatusOK, fiber.Map{"ok": true})
	})

	for i := 0; i < LoginRateLimit; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/auth/login", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "request %d should pass", i+1)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/auth/login", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var env respond.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "Too many login attempts. Please try again in a few minutes.", env.Error.Message)
}

func TestContactRateLimiterMessage(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/contact", ContactRateLimiter(), func(c *fiber.Ctx) error {
		return respond.Success(c, fiber.StatusCreated, fiber.Map{"ok": true})
	})

	for i := 0; i < ContactRateLimit; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/contact", nil))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/contact", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var env respond.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "Too many contact submissions. Please try again shortly.", env.Error.Message)
}
