package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalsboard/vitals/internal/models"
)

// RegisterRoutes wires the HTTP surface. Paths mirror what the dashboard
// front-end already calls, including the PascalCase controller-style names.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	userAuth := api.Group("/UserAuth")
	userAuth.Post("/Register", handler.Register)
	userAuth.Post("/Login", handler.Login)
	userAuth.Post("/Logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/Profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	registerMetricRoutes(api, "/StepsChart", newMetricEndpoint(handler, models.MetricSteps, "steps"))
	registerMetricRoutes(api, "/CaloriesChart", newMetricEndpoint(handler, models.MetricCalories, "calories"))
	registerMetricRoutes(api, "/WaterChart", newMetricEndpoint(handler, models.MetricWater, "amount"))

	// Generic chart data is unauthenticated; the dashboard cards call it
	// without a token.
	chartData := api.Group("/ChartData")
	chartData.Get("", handler.GetChartData)
	chartData.Post("", handler.AddChartData)
	chartData.Put("/:id", handler.UpdateChartData)
	chartData.Delete("/:id", handler.DeleteChartData)
}

func registerMetricRoutes(api fiber.Router, path string, endpoint *metricEndpoint) {
	group := api.Group(path, endpoint.handler.AuthRequired)
	group.Get("", endpoint.Weekly)
	group.Post("", endpoint.Upsert)
	group.Put("/:id", endpoint.UpdateByID)
}
