package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"foundation_api/dto"
	"foundation_api/internal/apperr"
	"foundation_api/internal/repository"
	"foundation_api/internal/respond"
	"foundation_api/internal/validation"
	"foundation_api/services"
)

type ContactHandler struct {
	messages *repository.ContactRepository
}

func NewContactHandler(messages *repository.ContactRepository) *ContactHandler {
	return &ContactHandler{messages: messages}
}

// Submit godoc
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        data body dto.ContactInput true "Contact form payload"
// @Success      201 {object} respond.Envelope{data=dto.ContactReceipt}
// @Failure      400 {object} respond.Envelope
// @Failure      429 {object} respond.Envelope
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if v := validation.ValidateContactInput(in); !v.IsValid {
		return apperr.Validation(v.Details)
	}

	msg := services.NewContactMessage(in, time.Now().UTC())

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	if err := h.messages.Insert(ctx, &msg); err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusCreated, dto.ContactReceipt{
		ID:        msg.ID.Hex(),
		CreatedAt: msg.CreatedAt,
	})
}
