package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"foundation_api/dto"
	"foundation_api/internal/apperr"
	"foundation_api/internal/repository"
	"foundation_api/internal/respond"
)

type AuthHandler struct {
	admins *repository.AdminUserRepository
	secret string
	ttl    time.Duration
}

func NewAuthHandler(admins *repository.AdminUserRepository, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{admins: admins, secret: secret, ttl: ttl}
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges email+password for a signed bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data body dto.LoginRequest true "Credentials"
// @Success      200 {object} respond.Envelope{data=dto.LoginResponse}
// @Failure      400 {object} respond.Envelope
// @Failure      401 {object} respond.Envelope
// @Failure      429 {object} respond.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return apperr.BadRequest("Email and password are required.")
	}

	if h.secret == "" {
		return apperr.Config("JWT_SECRET is not configured.")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admin, err := h.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same message as a wrong password so attackers cannot probe
			// which emails exist.
			return apperr.Unauthorized("Invalid credentials.")
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return apperr.Unauthorized("Invalid credentials.")
	}

	claims := jwt.MapClaims{
		"id":    admin.ID.Hex(),
		"email": admin.Email,
		"exp":   time.Now().Add(h.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, dto.LoginResponse{
		Token: signed,
		Admin: dto.LoginAdmin{ID: admin.ID.Hex(), Email: admin.Email},
	})
}
