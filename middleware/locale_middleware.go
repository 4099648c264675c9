package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/steamupuz/steamup_backend/i18n"
)

const langLocalKey = "lang"

// Locale resolves the request language (?lang= beats Accept-Language beats
// the default), keeps it in the request locals and echoes it back via the
// Content-Language header. Only API responses carry the header; operational
// endpoints like /health stay bare.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := i18n.Resolve(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
		c.Locals(langLocalKey, lang)

		err := c.Next()
		if strings.HasPrefix(c.Path(), "/api") {
			c.Set(fiber.HeaderContentLanguage, lang)
		}
		return err
	}
}

// Lang returns the language resolved by Locale for this request.
func Lang(c *fiber.Ctx) string {
	if lang, ok := c.Locals(langLocalKey).(string); ok {
		return lang
	}
	return i18n.DefaultLanguage
}
