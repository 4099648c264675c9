package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/steamupuz/steamup_backend/configs"
	"github.com/steamupuz/steamup_backend/database"
	"github.com/steamupuz/steamup_backend/middleware"
	"github.com/steamupuz/steamup_backend/notifications"
	"github.com/steamupuz/steamup_backend/response"
	"github.com/steamupuz/steamup_backend/routes"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.Seed()
	notifications.InitEmailService()

	app := fiber.New(fiber.Config{
		AppName:       "SteamUp Platform",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler:  response.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Language, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(middleware.Locale())

	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.OnboardingRoutes(app)
	routes.ConfigRoutes(app)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
