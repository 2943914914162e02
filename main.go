package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/crewplan/crewplan-api/cron"
	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/redis"
	"github.com/crewplan/crewplan-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupShiftRoutes(app)
	routes.SetupEmployeeRoutes(app)
	routes.SetupWorkSiteRoutes(app)
	routes.SetupPresetRoutes(app)
	routes.SetupPunchRoutes(app)
	routes.SetupPayslipRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupSummaryRoutes(app)

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
