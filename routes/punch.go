package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupPunchRoutes configures all punch clock related routes
func SetupPunchRoutes(app *fiber.App) {
	punch := app.Group("/api/punch", middleware.Protected())

	punch.Post("/in", controllers.PunchIn)
	punch.Post("/out", controllers.PunchOut)
	punch.Get("/list", controllers.ListPunches)
}
