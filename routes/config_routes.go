package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/handlers"
)

func ConfigRoutes(app *fiber.App) {
	cfg := app.Group("/api/config")

	cfg.Get("/", handlers.ListConfig)
	cfg.Get("/theme", handlers.Theme)
}
