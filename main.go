package main

import (
	"log"

	"tour_manager/config"
	"tour_manager/database"
	"tour_manager/router"
	"tour_manager/worker"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	worker.StartOTPPurgeScheduler()
	defer worker.StopOTPPurgeScheduler()
	worker.StartReminderScheduler()
	defer worker.StopReminderScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + cfg.Port))
}
