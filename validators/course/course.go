package courseValidator

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

type AddCourseRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Content      string `json:"content" validate:"required"`
	Amount       int    `json:"amount" validate:"required,gt=0"`
	File         string `json:"file"`
	FileType     string `json:"file_type"`
	FilePublicID string `json:"file_public_id"`
	Certificate  string `json:"certificate"`
}

func AddCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, middleware.TagRoot, errors)
		}

		c.Locals("validatedAddCourse", reqData)
		return c.Next()
	}
}

type UpdateCourseRequest struct {
	UniqueID string `json:"unique_id" validate:"required,uuid4"`
	Title    string `json:"title" validate:"required,min=3"`
	Content  string `json:"content" validate:"required"`
	Amount   int    `json:"amount" validate:"required,gt=0"`
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, middleware.TagRoot, errors)
		}

		c.Locals("validatedUpdateCourse", reqData)
		return c.Next()
	}
}

type UpdateCourseImageRequest struct {
	UniqueID     string `json:"unique_id" validate:"required,uuid4"`
	File         string `json:"file" validate:"required,url"`
	FileType     string `json:"file_type" validate:"required"`
	FilePublicID string `json:"file_public_id" validate:"required"`
}

func UpdateCourseImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseImageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, middleware.TagRoot, errors)
		}

		c.Locals("validatedUpdateCourseImage", reqData)
		return c.Next()
	}
}

type FindCourseRequest struct {
	UniqueID string `json:"unique_id" query:"unique_id" validate:"required,uuid4"`
}

func FindCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindCourseRequest)
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

		c.Locals("validatedFindCourse", reqData)
		return c.Next()
	}
}

type FindCourseByReferenceRequest struct {
	Reference string `json:"reference" query:"reference" validate:"required,len=8"`
}

func FindCourseByReference() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindCourseByReferenceRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedFindCourseByReference", reqData)
		return c.Next()
	}
}
