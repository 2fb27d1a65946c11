package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/calple/calple/internal/models"
	"github.com/calple/calple/internal/services"
)

func (handler *Handler) ListPins(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	pins, err := handler.pinService.ListForCouple(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load pins")
	}

	views := make([]fiber.Map, 0, len(pins))
	for index := range pins {
		views = append(views, pinView(&pins[index]))
	}
	return c.JSON(fiber.Map{"pins": views})
}

func (handler *Handler) CreatePin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	draft, ok2 := handler.parsePinBody(c)
	if !ok2 {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	pin, err := handler.pinService.Create(user.ID, draft)
	if err != nil {
		return pinError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"pin": pinView(&pin)})
}

func (handler *Handler) UpdatePin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	pinID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid pin id")
	}

	draft, ok2 := handler.parsePinBody(c)
	if !ok2 {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	pin, err := handler.pinService.Update(user.ID, pinID, draft)
	if err != nil {
		return pinError(c, err)
	}
	return c.JSON(fiber.Map{"pin": pinView(&pin)})
}

func (handler *Handler) DeletePin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	pinID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid pin id")
	}

	if err := handler.pinService.Delete(user.ID, pinID); err != nil {
		return pinError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) parsePinBody(c *fiber.Ctx) (models.DatePin, bool) {
	input := pinInput{}
	if err := c.BodyParser(&input); err != nil {
		return models.DatePin{}, false
	}

	pin := models.DatePin{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Lat:         input.Lat,
		Lng:         input.Lng,
	}
	if input.Date != "" {
		date, err := services.ParseDayDate(input.Date)
		if err != nil {
			return models.DatePin{}, false
		}
		pin.Date = date
	}
	return pin, true
}

func pinError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPinTitleRequired), errors.Is(err, services.ErrPinCoordinatesInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPinNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPinForbidden):
		return apiError(c, fiber.StatusForbidden, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save pin")
	}
}

func pinView(pin *models.DatePin) fiber.Map {
	view := fiber.Map{
		"id":          pin.ID,
		"ownerId":     pin.OwnerID,
		"title":       pin.Title,
		"description": pin.Description,
		"location":    pin.Location,
		"lat":         pin.Lat,
		"lng":         pin.Lng,
	}
	if pin.Date.IsZero() {
		view["date"] = nil
	} else {
		view["date"] = services.FormatDayDate(pin.Date)
	}
	return view
}
