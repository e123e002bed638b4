package handlers_fiber

import (
	"net/http"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/api"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreatePlaysFor inserts a player tenure row.
func (h *Handler) CreatePlaysFor(c *fiber.Ctx) error {
	var body api.PlaysForPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	rec, err := mapper.FromAPIPlaysForPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.CreatePlaysFor(c.Context(), rec)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIPlaysFor(*created))
}

// ListPlaysFor returns a page of player tenures.
func (h *Handler) ListPlaysFor(c *fiber.Ctx) error {
	offset, limit := listParams(c)
	recs, err := h.uc.ListPlaysFor(c.Context(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlaysForList(recs))
}

// GetPlaysFor returns one tenure row by its composite key.
func (h *Handler) GetPlaysFor(c *fiber.Ctx) error {
	key, err := tenureKey(c, "playerID")
	if err != nil {
		return badRequest(c, "invalid composite key")
	}

	rec, err := h.uc.PlaysFor(c.Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlaysFor(*rec))
}

// UpdatePlaysFor replaces the tenure attributes for the composite key.
func (h *Handler) UpdatePlaysFor(c *fiber.Ctx) error {
	key, err := tenureKey(c, "playerID")
	if err != nil {
		return badRequest(c, "invalid composite key")
	}

	var body api.PlaysForPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	rec, err := mapper.FromAPIPlaysForPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := h.uc.UpdatePlaysFor(c.Context(), key, rec)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlaysFor(*updated))
}

// DeletePlaysFor removes a tenure row; missing keys map to 404.
func (h *Handler) DeletePlaysFor(c *fiber.Ctx) error {
	key, err := tenureKey(c, "playerID")
	if err != nil {
		return badRequest(c, "invalid composite key")
	}

	deleted, err := h.uc.DeletePlaysFor(c.Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	if !deleted {
		return writeError(c, entities.ErrNotFound)
	}
	return c.Status(http.StatusOK).JSON(api.DeleteResponse{Deleted: true})
}
