package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/calple/calple/internal/models"
	"github.com/calple/calple/internal/services"
)

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, err := handler.periodService.ListDays(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle days")
	}

	insights, err := handler.periodService.Insights(user.ID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to derive insights")
	}

	dayViews := make([]fiber.Map, 0, len(days))
	for index := range days {
		dayViews = append(dayViews, periodDayView(&days[index]))
	}
	return c.JSON(fiber.Map{
		"periodDays": dayViews,
		"insights":   insightsView(insights),
	})
}

func (handler *Handler) UpsertCycleDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := periodDayInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	day, err := services.ParseDayDate(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date format")
	}

	entry, err := handler.periodService.UpsertDay(user.ID, day, services.PeriodDayInput{
		IsPeriod:   input.IsPeriod,
		Symptoms:   input.Symptoms,
		Mood:       input.Mood,
		Activities: input.Activities,
		Notes:      input.Notes,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle day")
	}
	return c.JSON(fiber.Map{"day": periodDayView(&entry)})
}

func (handler *Handler) DeleteCycleDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDayDate(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date format")
	}

	if err := handler.periodService.UnmarkPeriodDay(user.ID, day); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update cycle day")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, err := handler.periodService.Settings(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(fiber.Map{"settings": cycleSettingsView(settings)})
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := cycleSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	settings, err := handler.periodService.ReplaceSettings(user.ID, input.CycleLength, input.PeriodLength)
	if err != nil {
		if errors.Is(err, services.ErrCycleLengthOutOfRange) || errors.Is(err, services.ErrPeriodLengthOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(fiber.Map{"settings": cycleSettingsView(settings)})
}

func periodDayView(entry *models.PeriodDay) fiber.Map {
	return fiber.Map{
		"date":       services.FormatDayDate(entry.Date),
		"isPeriod":   entry.IsPeriod,
		"symptoms":   tagsOrEmpty(entry.Symptoms),
		"mood":       tagsOrEmpty(entry.Mood),
		"activities": tagsOrEmpty(entry.Activities),
		"notes":      entry.Notes,
	}
}

func cycleSettingsView(settings models.CycleSettings) fiber.Map {
	return fiber.Map{
		"cycleLength":  settings.CycleLength,
		"periodLength": settings.PeriodLength,
	}
}

func insightsView(insights services.PeriodInsights) fiber.Map {
	if !insights.HasData {
		return fiber.Map{"hasData": false}
	}

	predicted := make([]string, 0, len(insights.PredictedDays))
	for _, day := range insights.PredictedDays {
		predicted = append(predicted, services.FormatDayDate(day))
	}
	return fiber.Map{
		"hasData":             true,
		"periodStart":         services.FormatDayDate(insights.PeriodStart),
		"periodEnd":           services.FormatDayDate(insights.PeriodEnd),
		"nextPeriodDate":      services.FormatDayDate(insights.NextPeriodDate),
		"daysUntilNextPeriod": insights.DaysUntilNextPeriod,
		"currentCycleDay":     insights.CurrentCycleDay,
		"fertileWindowStart":  services.FormatDayDate(insights.FertileWindowStart),
		"fertileWindowEnd":    services.FormatDayDate(insights.FertileWindowEnd),
		"predictedDays":       predicted,
	}
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
