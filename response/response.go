package response

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the canonical shape of every API response. It is constructed
// explicitly at the boundary, never inferred from the payload.
type Envelope struct {
	Data  interface{} `json:"data"`
	Error *string     `json:"error"`
	Code  int         `json:"code"`
}

func Success(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(Envelope{Data: data, Code: code})
}

func Error(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(Envelope{Error: &msg, Code: code})
}

// ErrorHandler normalizes everything a handler can return into the
// envelope: validator errors flatten to a single 400 string, fiber errors
// keep their status, anything else is a 500 with the error text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()

	var ve validator.ValidationErrors
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve):
		code = fiber.StatusBadRequest
		msg = FlattenValidationErrors(ve)
	case errors.As(err, &fe):
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	}
	return Error(c, code, msg)
}

// FlattenValidationErrors joins field errors into one "field: message"
// string so clients never see a nested error structure.
func FlattenValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", fieldName(fe), fieldMessage(fe)))
	}
	return strings.Join(parts, ". ")
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	// StructField -> snake_case to match the JSON payload.
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters long", fe.Param())
	case "numeric":
		return "Must be numeric"
	default:
		return fmt.Sprintf("Failed validation on '%s'", fe.Tag())
	}
}
