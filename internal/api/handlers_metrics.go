package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitalsboard/vitals/internal/models"
)

// metricEndpoint serves one metric type's chart routes. The steps, calories
// and water endpoints share the same ledger and differ only in the metric
// type and the name of the value field on the wire.
type metricEndpoint struct {
	handler    *Handler
	metricType string
	valueField string
}

func newMetricEndpoint(handler *Handler, metricType string, valueField string) *metricEndpoint {
	return &metricEndpoint{
		handler:    handler,
		metricType: metricType,
		valueField: valueField,
	}
}

// Weekly returns the current week's records in ascending date order. An
// empty week comes back as seven persisted zero-value placeholders.
func (endpoint *metricEndpoint) Weekly(c *fiber.Ctx) error {
	records, err := endpoint.handler.metrics.WeeklyMetrics(
		c.UserContext(),
		currentUserID(c),
		endpoint.metricType,
		time.Now(),
	)
	if err != nil {
		return endpoint.handler.respondServiceError(c, err)
	}

	response := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		response = append(response, endpoint.metricResponse(record))
	}
	return c.JSON(response)
}

// Upsert writes today's value. Answers 201 when the call created the day's
// record and 200 when it overwrote an existing one.
func (endpoint *metricEndpoint) Upsert(c *fiber.Ctx) error {
	value, err := parseMetricValue(c, endpoint.valueField)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid data")
	}

	record, created, err := endpoint.handler.metrics.UpsertToday(
		c.UserContext(),
		currentUserID(c),
		endpoint.metricType,
		value,
		time.Now(),
	)
	if err != nil {
		return endpoint.handler.respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(endpoint.metricResponse(record))
}

func (endpoint *metricEndpoint) UpdateByID(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}
	value, err := parseMetricValue(c, endpoint.valueField)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid data")
	}

	if err := endpoint.handler.metrics.UpdateValue(
		c.UserContext(),
		currentUserID(c),
		endpoint.metricType,
		recordID,
		value,
	); err != nil {
		return endpoint.handler.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (endpoint *metricEndpoint) metricResponse(record models.DailyMetric) fiber.Map {
	return fiber.Map{
		"id":                record.ID,
		"userId":            record.UserID,
		"date":              record.Date,
		"dayOfWeek":         record.DayOfWeek,
		endpoint.valueField: record.Value,
		"createdAt":         record.CreatedAt,
		"updatedAt":         record.UpdatedAt,
	}
}
