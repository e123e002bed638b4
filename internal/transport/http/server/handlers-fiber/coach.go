package handlers_fiber

import (
	"net/http"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/api"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreateCoach inserts a coach and returns it with the generated id.
func (h *Handler) CreateCoach(c *fiber.Ctx) error {
	var body api.CoachPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	coach, err := mapper.FromAPICoachPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.CreateCoach(c.Context(), coach)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPICoach(*created))
}

// ListCoaches returns a page of coaches.
func (h *Handler) ListCoaches(c *fiber.Ctx) error {
	offset, limit := listParams(c)
	coaches, err := h.uc.ListCoaches(c.Context(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICoachList(coaches))
}

// GetCoach returns one coach by id.
func (h *Handler) GetCoach(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid coach id")
	}

	coach, err := h.uc.Coach(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICoach(*coach))
}

// UpdateCoach fully replaces a coach record by id.
func (h *Handler) UpdateCoach(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid coach id")
	}

	var body api.CoachPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	coach, err := mapper.FromAPICoachPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := h.uc.UpdateCoach(c.Context(), id, coach)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICoach(*updated))
}

// DeleteCoach removes a coach by id; missing keys map to 404.
func (h *Handler) DeleteCoach(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid coach id")
	}

	deleted, err := h.uc.DeleteCoach(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !deleted {
		return writeError(c, entities.ErrNotFound)
	}
	return c.Status(http.StatusOK).JSON(api.DeleteResponse{Deleted: true})
}
