package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/calple/calple/internal/models"
	"github.com/calple/calple/internal/services"
)

func (handler *Handler) GetTodayCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	checkin, found, err := handler.checkinService.FindForDay(user.ID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load checkin")
	}
	if !found {
		return c.JSON(fiber.Map{"checkin": nil})
	}
	return c.JSON(fiber.Map{"checkin": checkinView(&checkin)})
}

func (handler *Handler) GetPartnerCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	checkin, found, err := handler.checkinService.PartnerCheckin(user, handler.today())
	if err != nil {
		if errors.Is(err, services.ErrNoPartnerConnected) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load checkin")
	}
	if !found {
		return c.JSON(fiber.Map{"checkin": nil})
	}
	return c.JSON(fiber.Map{"checkin": checkinView(&checkin)})
}

func (handler *Handler) UpsertCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := checkinInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	checkin, err := handler.checkinService.UpsertToday(user.ID, handler.today(), services.CheckinInput{
		Mood:   input.Mood,
		Energy: input.Energy,
		Note:   input.Note,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCheckinMood) || errors.Is(err, services.ErrInvalidCheckinEnergy) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save checkin")
	}
	return c.JSON(fiber.Map{"checkin": checkinView(&checkin)})
}

func checkinView(checkin *models.Checkin) fiber.Map {
	return fiber.Map{
		"date":   services.FormatDayDate(checkin.Date),
		"mood":   checkin.Mood,
		"energy": checkin.Energy,
		"note":   checkin.Note,
	}
}
