package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/calple/calple/internal/models"
	"github.com/calple/calple/internal/services"
)

func (handler *Handler) ListIdeas(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	ideas, err := handler.ideaService.ListForCouple(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load ideas")
	}

	views := make([]fiber.Map, 0, len(ideas))
	for index := range ideas {
		views = append(views, ideaView(&ideas[index]))
	}
	return c.JSON(fiber.Map{"ideas": views})
}

func (handler *Handler) CreateIdea(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := ideaInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	idea, err := handler.ideaService.Create(user.ID, input.Title, input.Category)
	if err != nil {
		if errors.Is(err, services.ErrIdeaTitleRequired) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save idea")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"idea": ideaView(&idea)})
}

func (handler *Handler) DeleteIdea(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	ideaID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid idea id")
	}

	if err := handler.ideaService.Delete(user.ID, ideaID); err != nil {
		switch {
		case errors.Is(err, services.ErrIdeaNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrIdeaForbidden):
			return apiError(c, fiber.StatusForbidden, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to delete idea")
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SpinIdeas(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := spinInput{}
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.ideaService.Spin(user, input.Category)
	if err != nil {
		if errors.Is(err, services.ErrNoIdeasToSpin) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to spin")
	}
	return c.JSON(fiber.Map{
		"spinId": result.ID,
		"idea":   ideaView(&result.Idea),
	})
}

func ideaView(idea *models.DateIdea) fiber.Map {
	return fiber.Map{
		"id":       idea.ID,
		"ownerId":  idea.OwnerID,
		"title":    idea.Title,
		"category": idea.Category,
	}
}
