package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/handlers"
	"github.com/steamupuz/steamup_backend/middleware"
)

func ProfileRoutes(app *fiber.App) {
	profile := app.Group("/api/profile", middleware.Protected())

	profile.Get("/", handlers.GetProfile)
	profile.Post("/", handlers.UpsertProfile)
	profile.Put("/", handlers.UpsertProfile)
	profile.Patch("/", handlers.UpsertProfile)
}
