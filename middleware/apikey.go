package middleware

import (
	"crypto/subtle"

	"academy/config"

	"github.com/gofiber/fiber/v2"
)

// HeaderAPIKey is the request header carrying the root API key.
const HeaderAPIKey = "academy-access-key"

// VerifyKey grants root access when the caller presents a key from the static
// allow-list. There is no per-key scoping.
func VerifyKey(c *fiber.Ctx) error {
	key := c.Get(HeaderAPIKey)
	if key == "" {
		key = c.Query("key")
	}

	if key == "" {
		return JsonResponse(c, fiber.StatusForbidden, false, TagAnonymous, "No key provided!", nil)
	}

	for _, allowed := range config.AppConfig.APIKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(allowed)) == 1 {
			c.Locals("apiKey", key)
			return c.Next()
		}
	}

	return JsonResponse(c, fiber.StatusUnauthorized, false, TagAnonymous, "Invalid API Key!", nil)
}
