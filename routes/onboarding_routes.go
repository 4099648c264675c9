package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/handlers"
)

func OnboardingRoutes(app *fiber.App) {
	onboarding := app.Group("/api/onboarding")

	onboarding.Get("/options", handlers.OnboardingOptions)
}
