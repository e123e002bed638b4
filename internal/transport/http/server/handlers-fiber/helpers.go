package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/api"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// writeError translates the error taxonomy to HTTP statuses. Category
// messages only; internal error text never reaches the caller.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusUnprocessableEntity
		code = api.CodeValidation
		msg = err.Error()
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrTransientStore):
		status = http.StatusServiceUnavailable
		code = api.CodeUnavailable
		msg = "storage temporarily unavailable"
	case errors.Is(err, entities.ErrFatalStore):
		status = http.StatusServiceUnavailable
		code = api.CodeUnavailable
		msg = "storage rejected the operation"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, msg))
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

func tenureKey(c *fiber.Ctx, subjectParam string) (entities.TenureKey, error) {
	subject, err := paramID(c, subjectParam)
	if err != nil {
		return entities.TenureKey{}, err
	}
	team, err := paramID(c, "teamID")
	if err != nil {
		return entities.TenureKey{}, err
	}
	season, err := paramID(c, "seasonID")
	if err != nil {
		return entities.TenureKey{}, err
	}
	return entities.TenureKey{SubjectID: subject, TeamID: team, SeasonID: season}, nil
}

func listParams(c *fiber.Ctx) (offset, limit int) {
	return c.QueryInt("offset", 0), c.QueryInt("limit", 100)
}
