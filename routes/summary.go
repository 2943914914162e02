package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupSummaryRoutes configures the dashboard summary route
func SetupSummaryRoutes(app *fiber.App) {
	app.Get("/api/summary", middleware.Protected(), controllers.GetSummary)
}
