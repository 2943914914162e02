package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupEmployeeRoutes configures all employee related routes
func SetupEmployeeRoutes(app *fiber.App) {
	employee := app.Group("/api/employee", middleware.Protected())

	employee.Get("/list", controllers.ListEmployees)
	employee.Get("/:id", controllers.GetEmployee)
	employee.Post("/create", middleware.RequireOwner(), controllers.CreateEmployee)
	employee.Put("/edit/:id", middleware.RequireOwner(), controllers.UpdateEmployee)
	employee.Post("/:id/avatar", controllers.UpdateEmployeeAvatar)
	employee.Delete("/delete/:id", middleware.RequireOwner(), controllers.RemoveEmployee)
}
