package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// TagRoot identifies the administrative caller in response envelopes.
const TagRoot = "Root"

// TagAnonymous identifies unauthenticated callers in response envelopes.
const TagAnonymous = "Anonymous"

// JsonResponse writes the uniform response envelope every endpoint uses.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, uniqueID, text string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success":   success,
		"unique_id": uniqueID,
		"text":      text,
		"data":      data,
	})
}

// ValidationErrorResponse reports per-field validation failures.
func ValidationErrorResponse(c *fiber.Ctx, uniqueID string, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, uniqueID, "Validation Error Occured", errors)
}
