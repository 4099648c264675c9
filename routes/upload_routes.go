package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/handlers"
	"github.com/steamupuz/steamup_backend/middleware"
)

func UploadRoutes(app *fiber.App) {
	uploads := app.Group("/api/uploads", middleware.Protected(), middleware.StaffRequired())

	uploads.Get("/signature", handlers.GenerateIconUploadSignature)
}
