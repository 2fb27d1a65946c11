package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/calple/calple/internal/models"
	"github.com/calple/calple/internal/services"
)

func (handler *Handler) ListDDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := handler.today()
	year, month, ok := parseMonthQuery(c, today)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year or month")
	}

	events, err := handler.eventService.ListMonth(user.ID, year, month)
	if err != nil {
		if errors.Is(err, services.ErrMonthOutOfRange) || errors.Is(err, services.ErrYearOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "invalid year or month")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load events")
	}

	views := make([]fiber.Map, 0, len(events))
	for index := range events {
		views = append(views, eventView(&events[index], today))
	}
	return c.JSON(fiber.Map{"ddays": views})
}

func (handler *Handler) CreateDDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := eventInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Date == nil {
		return apiError(c, fiber.StatusBadRequest, "date required")
	}

	draft, err := eventDraftFromInput(services.EventInput{Group: models.GroupOthers}, input)
	if err != nil {
		return eventInputError(c, err)
	}

	event, err := handler.eventService.Create(user.ID, draft, sharedEventUserIDs(user))
	if err != nil {
		return eventInputError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"dday": eventView(&event, handler.today())})
}

func (handler *Handler) UpdateDDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	input := eventInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	existing, found, err := handler.repos.Events.FindByID(eventID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load event")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "event not found")
	}
	if existing.OwnerID != user.ID {
		return apiError(c, fiber.StatusForbidden, "event belongs to another user")
	}

	draft, err := eventDraftFromInput(services.EventInput{
		Title:       existing.Title,
		Group:       existing.Group,
		Description: existing.Description,
		Date:        existing.Date,
		EndDate:     existing.EndDate,
		IsAnnual:    existing.IsAnnual,
	}, input)
	if err != nil {
		return eventInputError(c, err)
	}

	event, err := handler.eventService.Update(user.ID, eventID, draft, existing.ConnectedUserIDs)
	if err != nil {
		return eventInputError(c, err)
	}
	return c.JSON(fiber.Map{"dday": eventView(&event, handler.today())})
}

func (handler *Handler) DeleteDDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	if err := handler.eventService.Delete(user.ID, eventID); err != nil {
		return eventInputError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// eventDraftFromInput overlays the request's present fields on top of the
// base draft, so PUT bodies may carry only the fields they change.
func eventDraftFromInput(base services.EventInput, input eventInput) (services.EventInput, error) {
	if input.Title != nil {
		base.Title = *input.Title
	}
	if input.Group != nil {
		base.Group = *input.Group
	}
	if input.Description != nil {
		base.Description = *input.Description
	}
	if input.Date != nil {
		date, err := services.ParseCompactDate(*input.Date)
		if err != nil {
			return base, err
		}
		base.Date = date
	}
	if input.EndDate != nil {
		if *input.EndDate == "" {
			base.EndDate = nil
		} else {
			endDate, err := services.ParseCompactDate(*input.EndDate)
			if err != nil {
				return base, err
			}
			base.EndDate = &endDate
		}
	}
	if input.IsAnnual != nil {
		base.IsAnnual = *input.IsAnnual
	}
	return base, nil
}

func eventInputError(c *fiber.Ctx, err error) error {
	parseErr := &services.ParseError{}
	switch {
	case errors.As(err, &parseErr):
		return apiError(c, fiber.StatusBadRequest, "invalid date format")
	case errors.Is(err, services.ErrEventTitleRequired),
		errors.Is(err, services.ErrInvalidEventGroup),
		errors.Is(err, services.ErrEventEndBeforeDate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEventNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEventForbidden):
		return apiError(c, fiber.StatusForbidden, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save event")
	}
}

func eventView(event *models.Event, today time.Time) fiber.Map {
	view := fiber.Map{
		"id":             event.ID,
		"ownerId":        event.OwnerID,
		"title":          event.Title,
		"group":          event.Group,
		"description":    event.Description,
		"date":           services.FormatCompactDate(event.Date),
		"isAnnual":       event.IsAnnual,
		"connectedUsers": event.ConnectedUserIDs,
		"days":           services.FormatCountdown(event.Date, today),
	}
	if event.EndDate != nil {
		view["endDate"] = services.FormatCompactDate(*event.EndDate)
	} else {
		view["endDate"] = nil
	}
	return view
}

func sharedEventUserIDs(user *models.User) []uint {
	if user.PartnerID == nil {
		return nil
	}
	return []uint{*user.PartnerID}
}

func parseMonthQuery(c *fiber.Ctx, today time.Time) (int, time.Month, bool) {
	year := today.Year()
	month := today.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		month = time.Month(parsed)
	}
	return year, month, true
}
