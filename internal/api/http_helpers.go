package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vitalsboard/vitals/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError translates service sentinels into HTTP responses.
// Anything unclassified is logged with detail and answered with a generic
// message so internals never reach the caller.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingRegistrationField):
		return apiError(c, fiber.StatusBadRequest, "Invalid data")
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid username or password",
		})
	case errors.Is(err, services.ErrNegativeValue):
		return apiError(c, fiber.StatusBadRequest, "Value cannot be negative")
	case errors.Is(err, services.ErrUnknownMetricType):
		return apiError(c, fiber.StatusBadRequest, "Invalid data")
	case errors.Is(err, services.ErrInvalidChartValue):
		return apiError(c, fiber.StatusBadRequest, "Invalid value.")
	case errors.Is(err, services.ErrMetricNotFound),
		errors.Is(err, services.ErrChartNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "Record not found")
	case errors.Is(err, services.ErrChartConflict):
		return apiError(c, fiber.StatusConflict, "Record was modified concurrently")
	default:
		handler.logger.Error("request failed", "path", c.Path(), "method", c.Method(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, "An unexpected error occurred")
	}
}
