package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetChartData(c *fiber.Ctx) error {
	points, err := handler.charts.ListSortedByDate(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	response := make([]fiber.Map, 0, len(points))
	for _, point := range points {
		response = append(response, fiber.Map{
			"id":    point.ID,
			"value": point.Value,
			"date":  point.Date,
		})
	}
	return c.JSON(response)
}

func (handler *Handler) AddChartData(c *fiber.Ctx) error {
	input := chartPointInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid value.")
	}

	point, err := handler.charts.Create(c.UserContext(), input.Value)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":    point.ID,
		"value": point.Value,
		"date":  point.Date,
	})
}

func (handler *Handler) UpdateChartData(c *fiber.Ctx) error {
	pointID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	input := chartPointInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid data")
	}
	if input.ID != pointID {
		return apiError(c, fiber.StatusBadRequest, "Id mismatch")
	}

	if err := handler.charts.Update(c.UserContext(), pointID, input.Value, input.Date); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteChartData(c *fiber.Ctx) error {
	pointID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := handler.charts.Delete(c.UserContext(), pointID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
