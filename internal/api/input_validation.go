package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) parseAndValidate(c *fiber.Ctx, target any) error {
	if err := c.BodyParser(target); err != nil {
		return err
	}
	return handler.validate.Struct(target)
}

// parseMetricValue pulls the metric's own field (steps, calories, amount)
// out of the JSON body. The field must be present and numeric; range checks
// live in the service.
func parseMetricValue(c *fiber.Ctx, field string) (float64, error) {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return 0, err
	}

	raw, ok := payload[field]
	if !ok {
		return 0, fmt.Errorf("missing field %q", field)
	}
	value, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", field)
	}
	return value, nil
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
