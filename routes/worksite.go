package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupWorkSiteRoutes configures all worksite related routes
func SetupWorkSiteRoutes(app *fiber.App) {
	worksite := app.Group("/api/worksite", middleware.Protected())

	worksite.Get("/list", controllers.ListWorkSites)
	worksite.Get("/:id", controllers.GetWorkSite)
	worksite.Post("/create", middleware.RequireOwner(), controllers.CreateWorkSite)
	worksite.Put("/edit/:id", middleware.RequireOwner(), controllers.UpdateWorkSite)
	worksite.Delete("/delete/:id", middleware.RequireOwner(), controllers.DeleteWorkSite)
}
