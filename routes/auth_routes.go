package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/handlers"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Post("/token/refresh", handlers.RefreshToken)
	auth.Post("/request-otp", handlers.RequestOTP)
	auth.Post("/verify-otp", handlers.VerifyOTP)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Post("/verify-reset-otp", handlers.VerifyResetOTP)
	auth.Post("/reset-password", handlers.ResetPassword)
	auth.Post("/has-profile", handlers.HasProfile)
}
