package handlers_fiber

import (
	"net/http"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/api"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreateTrains inserts a coach tenure row.
func (h *Handler) CreateTrains(c *fiber.Ctx) error {
	var body api.TrainsPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	rec, err := mapper.FromAPITrainsPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.CreateTrains(c.Context(), rec)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITrains(*created))
}

// ListTrains returns a page of coach tenures.
func (h *Handler) ListTrains(c *fiber.Ctx) error {
	offset, limit := listParams(c)
	recs, err := h.uc.ListTrains(c.Context(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITrainsList(recs))
}

// GetTrains returns one tenure row by its composite key.
func (h *Handler) GetTrains(c *fiber.Ctx) error {
	key, err := tenureKey(c, "coachID")
	if err != nil {
		return badRequest(c, "invalid composite key")
	}

	rec, err := h.uc.Trains(c.Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITrains(*rec))
}

// UpdateTrains replaces the tenure attributes for the composite key.
func (h *Handler) UpdateTrains(c *fiber.Ctx) error {
	key, err := tenureKey(c, "coachID")
	if err != nil {
		return badRequest(c, "invalid composite key")
	}

	var body api.TrainsPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	rec, err := mapper.FromAPITrainsPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := h.uc.UpdateTrains(c.Context(), key, rec)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITrains(*updated))
}

// DeleteTrains removes a tenure row; missing keys map to 404.
func (h *Handler) DeleteTrains(c *fiber.Ctx) error {
	key, err := tenureKey(c, "coachID")
	if err != nil {
		return badRequest(c, "invalid composite key")
	}

	deleted, err := h.uc.DeleteTrains(c.Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	if !deleted {
		return writeError(c, entities.ErrNotFound)
	}
	return c.Status(http.StatusOK).JSON(api.DeleteResponse{Deleted: true})
}
