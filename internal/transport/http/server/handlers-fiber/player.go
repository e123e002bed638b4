package handlers_fiber

import (
	"net/http"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/api"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreatePlayer inserts a player and returns it with the generated id.
func (h *Handler) CreatePlayer(c *fiber.Ctx) error {
	var body api.PlayerPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	player, err := mapper.FromAPIPlayerPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.CreatePlayer(c.Context(), player)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIPlayer(*created))
}

// ListPlayers returns a page of players.
func (h *Handler) ListPlayers(c *fiber.Ctx) error {
	offset, limit := listParams(c)
	players, err := h.uc.ListPlayers(c.Context(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlayerList(players))
}

// GetPlayer returns one player by id.
func (h *Handler) GetPlayer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid player id")
	}

	player, err := h.uc.Player(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlayer(*player))
}

// UpdatePlayer fully replaces a player record by id.
func (h *Handler) UpdatePlayer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid player id")
	}

	var body api.PlayerPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	player, err := mapper.FromAPIPlayerPayload(body)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := h.uc.UpdatePlayer(c.Context(), id, player)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlayer(*updated))
}

// DeletePlayer removes a player by id; missing keys map to 404.
func (h *Handler) DeletePlayer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid player id")
	}

	deleted, err := h.uc.DeletePlayer(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !deleted {
		return writeError(c, entities.ErrNotFound)
	}
	return c.Status(http.StatusOK).JSON(api.DeleteResponse{Deleted: true})
}
