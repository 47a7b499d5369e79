package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/healeasy/healeasy-api/cron"
	"github.com/healeasy/healeasy-api/db"
	"github.com/healeasy/healeasy-api/redis"
	"github.com/healeasy/healeasy-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("HealEasy API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupSlotRoutes(app)
	routes.SetupAdminRoutes(app)

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
