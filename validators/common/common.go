package commonValidator

import (
	"academy/middleware"
	"academy/utils/validation"

	"github.com/gofiber/fiber/v2"
)

func userTag(c *fiber.Ctx) string {
	if uid, ok := c.Locals("userUniqueID").(string); ok && uid != "" {
		return uid
	}
	return middleware.TagAnonymous
}

type SearchRequest struct {
	Search string `json:"search" query:"search" validate:"required,min=2"`
}

// Search validates the search term shared by the list-search endpoints.
func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}
