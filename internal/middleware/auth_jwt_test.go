package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundation_api/internal/respond"
)

const testSecret = "test-secret"

func adminApp(secret string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/admin/ping", RequireAdmin(secret), func(c *fiber.Ctx) error {
		return respond.Success(c, fiber.StatusOK, fiber.Map{
			"id":    c.Locals(LocalsAdminID),
			"email": c.Locals(LocalsAdminEmail),
		})
	})
	return app
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    "66f0a1b2c3d4e5f6a7b8c9d0",
		"email": "ops@example.org",
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAdminMissingHeader(t *testing.T) {
	app := adminApp(testSecret)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var env respond.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "Unauthorized: missing Bearer token.", env.Error.Message)
}

func TestRequireAdminEmptyToken(t *testing.T) {
	app := adminApp(testSecret)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminGarbageToken(t *testing.T) {
	app := adminApp(testSecret)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var env respond.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "Unauthorized: token is invalid or expired.", env.Error.Message)
}

func TestRequireAdminExpiredToken(t *testing.T) {
	app := adminApp(testSecret)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, time.Now().Add(-time.Hour)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminWrongSecret(t *testing.T) {
	app := adminApp(testSecret)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "other-secret", time.Now().Add(time.Hour)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminValidToken(t *testing.T) {
	app := adminApp(testSecret)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, time.Now().Add(time.Hour)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env struct {
		Data struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "66f0a1b2c3d4e5f6a7b8c9d0", env.Data.ID)
	assert.Equal(t, "ops@example.org", env.Data.Email)
}

func TestRequireAdminMissingSecretIsServerError(t *testing.T) {
	app := adminApp("")

	req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, time.Now().Add(time.Hour)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
