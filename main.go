package main

import (
	"log"

	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartInvoiceEmailWorker()
	helper.StartNoShowScheduler()
	helper.StartMaintenanceScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
