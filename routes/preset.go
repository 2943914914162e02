package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/controllers"
	"github.com/crewplan/crewplan-api/middleware"
)

// SetupPresetRoutes configures all shift preset related routes
func SetupPresetRoutes(app *fiber.App) {
	preset := app.Group("/api/shift-preset", middleware.Protected(), middleware.RequireOwner())

	preset.Get("/group/list", controllers.ListPresetGroups)
	preset.Post("/group/create", controllers.CreatePresetGroup)
	preset.Put("/group/edit/:id", controllers.UpdatePresetGroup)
	preset.Delete("/group/delete/:id", controllers.DeletePresetGroup)
	preset.Post("/group/:id/populate", controllers.PopulateWeek)

	preset.Post("/create", controllers.CreatePreset)
	preset.Put("/edit/:id", controllers.UpdatePreset)
	preset.Delete("/delete/:id", controllers.DeletePreset)
}
