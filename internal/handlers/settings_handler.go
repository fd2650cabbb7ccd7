package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"foundation_api/dto"
	"foundation_api/internal/apperr"
	"foundation_api/internal/repository"
	"foundation_api/internal/respond"
	"foundation_api/services"
)

type SettingsHandler struct {
	settings *repository.SettingsRepository
}

func NewSettingsHandler(settings *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetPublic godoc
// @Summary      Get donation settings (public subset)
// @Tags         settings
// @Produce      json
// @Success      200 {object} respond.Envelope{data=dto.PublicSettings}
// @Router       /settings [get]
func (h *SettingsHandler) GetPublic(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	s, err := h.settings.GetOrCreate(ctx)
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, dto.PublicSettings{
		DonationBankDetails: s.DonationBankDetails,
		DonationQrImageURLs: s.DonationQrImageURLs,
		ExternalDonateURL:   s.ExternalDonateURL,
	})
}

// GetAdmin godoc
// @Summary      Get the full settings record
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} respond.Envelope{data=model.Settings}
// @Failure      401 {object} respond.Envelope
// @Router       /admin/settings [get]
func (h *SettingsHandler) GetAdmin(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	s, err := h.settings.GetOrCreate(ctx)
	if err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, s)
}

// Update godoc
// @Summary      Update settings (merge provided keys)
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        data body dto.SettingsInput true "Keys to merge"
// @Success      200 {object} respond.Envelope{data=model.Settings}
// @Failure      400 {object} respond.Envelope
// @Failure      401 {object} respond.Envelope
// @Router       /admin/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.SettingsInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	s, err := h.settings.GetOrCreate(ctx)
	if err != nil {
		return err
	}

	services.ApplySettingsUpdate(s, in, time.Now().UTC())

	if err := h.settings.Save(ctx, s); err != nil {
		return err
	}

	return respond.Success(c, fiber.StatusOK, s)
}
