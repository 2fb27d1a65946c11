package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/calple/calple/internal/models"
)

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	preference, found, err := handler.repos.Preferences.FindByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	if !found {
		preference = models.Preference{
			UserID:      user.ID,
			AccentColor: models.DefaultAccentColor,
			Theme:       models.ThemeSystem,
		}
	}
	return c.JSON(fiber.Map{"preferences": preferenceView(&preference)})
}

func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := preferenceInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !isValidTheme(input.Theme) {
		return apiError(c, fiber.StatusBadRequest, "invalid theme")
	}
	accentColor := strings.TrimSpace(input.AccentColor)
	if accentColor == "" {
		accentColor = models.DefaultAccentColor
	}

	preference, found, err := handler.repos.Preferences.FindByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	if !found {
		preference = models.Preference{UserID: user.ID}
	}
	preference.AccentColor = accentColor
	preference.Theme = input.Theme

	if err := handler.repos.Preferences.Upsert(&preference); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save preferences")
	}
	return c.JSON(fiber.Map{"preferences": preferenceView(&preference)})
}

func isValidTheme(theme string) bool {
	switch theme {
	case models.ThemeSystem, models.ThemeLight, models.ThemeDark:
		return true
	default:
		return false
	}
}

func preferenceView(preference *models.Preference) fiber.Map {
	return fiber.Map{
		"accentColor": preference.AccentColor,
		"theme":       preference.Theme,
	}
}
