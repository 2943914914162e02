package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupPayslipRoutes configures all payslip related routes
func SetupPayslipRoutes(app *fiber.App) {
	payslip := app.Group("/api/payslip", middleware.Protected())

	payslip.Post("/generate", middleware.RequireOwner(), controllers.GeneratePayslips)
	payslip.Get("/list", controllers.ListPayslips)
}
