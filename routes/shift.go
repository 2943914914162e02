package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupShiftRoutes configures all shift related routes
func SetupShiftRoutes(app *fiber.App) {
	shift := app.Group("/api/shift", middleware.Protected())

	shift.Get("/list", controllers.ListShifts)
	shift.Get("/call-ins", controllers.ListCallIns)
	shift.Post("/create", middleware.RequireOwner(), controllers.CreateShift)
	shift.Put("/edit/:id", middleware.RequireOwner(), controllers.EditShift)
	shift.Put("/swap-employee/:id", middleware.RequireOwner(), controllers.SwapEmployee)
	shift.Delete("/delete/:id", middleware.RequireOwner(), controllers.DeleteShift)
	shift.Post("/:id/call-in", controllers.CallInShift)
}
