package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"foundation_api/internal/apperr"
)

// Locals keys under which the authenticated admin identity is stored.
const (
	LocalsAdminID    = "admin_id"
	LocalsAdminEmail = "admin_email"
)

// RequireAdmin guards admin routes with a bearer token check. Only HS256 is
// accepted. A missing signing secret is a server misconfiguration (500), not
// a client auth failure.
func RequireAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return apperr.Unauthorized("Unauthorized: missing Bearer token.")
		}

		tokenStr := strings.TrimSpace(auth[len("Bearer "):])
		if tokenStr == "" {
			return apperr.Unauthorized("Unauthorized: invalid token format.")
		}

		if secret == "" {
			return apperr.Config("Server misconfiguration: JWT secret missing.")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(
			tokenStr,
			claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return apperr.Unauthorized("Unauthorized: token is invalid or expired.")
		}

		id, _ := claims["id"].(string)
		email, _ := claims["email"].(string)
		c.Locals(LocalsAdminID, id)
		c.Locals(LocalsAdminEmail, email)

		return c.Next()
	}
}
