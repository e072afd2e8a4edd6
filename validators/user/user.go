package userValidator

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

type UpdateNamesRequest struct {
	Firstname  string `json:"firstname" validate:"required,min=2"`
	Middlename string `json:"middlename"`
	Lastname   string `json:"lastname" validate:"required,min=2"`
}

func UpdateNames() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateNamesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedUpdateNames", reqData)
		return c.Next()
	}
}

type UpdateDetailsRequest struct {
	PhoneNumber    string `json:"phone_number" validate:"required,min=7"`
	AltPhoneNumber string `json:"alt_phone_number"`
}

func UpdateDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateDetailsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedUpdateDetails", reqData)
		return c.Next()
	}
}

type UpdateAddressRequest struct {
	Address string `json:"address" validate:"required"`
	Country string `json:"country" validate:"required"`
	State   string `json:"state" validate:"required"`
	City    string `json:"city" validate:"required"`
}

func UpdateAddress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateAddressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedUpdateAddress", reqData)
		return c.Next()
	}
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=8,max=30"`
	Password    string `json:"password" validate:"required,min=8,max=30"`
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

type ProfileImageRequest struct {
	ProfileImage         string `json:"profile_image" validate:"required,url"`
	ProfileImagePublicID string `json:"profile_image_public_id" validate:"required"`
}

func ProfileImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProfileImageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedProfileImage", reqData)
		return c.Next()
	}
}

type FindUserRequest struct {
	UniqueID string `json:"unique_id" query:"unique_id" validate:"required,uuid4"`
}

// FindUser validates a user unique id from query or body.
func FindUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindUserRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Invalid request!", nil)
		}
		if reqData.UniqueID == "" {
			if err := c.BodyParser(reqData); err != nil && c.Method() != fiber.MethodGet {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Invalid request body!", nil)
			}
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, middleware.TagRoot, errors)
		}

		c.Locals("validatedFindUser", reqData)
		return c.Next()
	}
}

type UpdateEmailRequest struct {
	UniqueID string `json:"unique_id" validate:"required,uuid4"`
	Email    string `json:"email" validate:"required,email"`
}

func UpdateEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEmailRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, middleware.TagRoot, errors)
		}

		c.Locals("validatedUpdateEmail", reqData)
		return c.Next()
	}
}
