package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/steamupuz/steamup_backend/configs"
	"github.com/steamupuz/steamup_backend/response"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return response.Error(c, fiber.StatusUnauthorized, "Missing or malformed JWT")
	}
	return response.Error(c, fiber.StatusUnauthorized, "Invalid or expired JWT")
}

// UserClaims returns the claims of the already-verified token set by
// Protected().
func UserClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("user").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func StaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := UserClaims(c)
		if isStaff, _ := claims["is_staff"].(bool); !isStaff {
			return response.Error(c, fiber.StatusForbidden, "Forbidden: Staff access required")
		}
		return c.Next()
	}
}
