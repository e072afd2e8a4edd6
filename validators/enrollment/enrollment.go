package enrollmentValidator

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

type FindEnrollmentRequest struct {
	UniqueID string `json:"unique_id" query:"unique_id" validate:"required,uuid4"`
}

func FindEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindEnrollmentRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request!", nil)
		}
		if reqData.UniqueID == "" && c.Method() != fiber.MethodGet {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
			}
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedFindEnrollment", reqData)
		return c.Next()
	}
}

type UpdateEnrollmentStatusRequest struct {
	UniqueID string `json:"unique_id" validate:"required,uuid4"`
	Status   string `json:"status" validate:"required,oneof=Ongoing Completed Certified"`
}

func UpdateEnrollmentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEnrollmentStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, middleware.TagRoot, errors)
		}

		c.Locals("validatedUpdateEnrollmentStatus", reqData)
		return c.Next()
	}
}
