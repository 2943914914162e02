package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupAvailabilityRoutes configures all availability related routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/api/availability", middleware.Protected())

	availability.Get("/:id", controllers.GetAvailability)
	availability.Put("/:id", controllers.SetAvailability)
}
