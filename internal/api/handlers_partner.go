package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/calple/calple/internal/services"
)

func (handler *Handler) GetPartner(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if user.PartnerID == nil {
		return c.JSON(fiber.Map{"partner": nil})
	}

	partner, err := handler.authService.FindByID(*user.PartnerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load partner")
	}
	return c.JSON(fiber.Map{"partner": fiber.Map{
		"id":          partner.ID,
		"displayName": partner.DisplayName,
	}})
}

func (handler *Handler) IssuePartnerInvite(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	invite, err := handler.partnerService.IssueInvite(user)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyConnected) {
			return apiError(c, fiber.StatusConflict, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create invite")
	}
	return c.JSON(fiber.Map{"code": invite.Code})
}

func (handler *Handler) ConnectPartner(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := connectInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	partner, err := handler.partnerService.Connect(user, input.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInviteNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrCannotInviteSelf),
			errors.Is(err, services.ErrAlreadyConnected),
			errors.Is(err, services.ErrPartnerUnavailable):
			return apiError(c, fiber.StatusConflict, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to connect partner")
		}
	}
	return c.JSON(fiber.Map{"partner": fiber.Map{
		"id":          partner.ID,
		"displayName": partner.DisplayName,
	}})
}

func (handler *Handler) DisconnectPartner(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.partnerService.Disconnect(user); err != nil {
		if errors.Is(err, services.ErrNoPartnerConnected) {
			return apiError(c, fiber.StatusConflict, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to disconnect partner")
	}
	return c.JSON(fiber.Map{"ok": true})
}
