package authValidator

import (
	"academy/middleware"
	"academy/utils/validation"

	"github.com/gofiber/fiber/v2"
)

type SignupRequest struct {
	Firstname      string `json:"firstname" validate:"required,min=2"`
	Middlename     string `json:"middlename"`
	Lastname       string `json:"lastname" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phone_number"`
	AltPhoneNumber string `json:"alt_phone_number"`
	Address        string `json:"address"`
	Country        string `json:"country"`
	State          string `json:"state"`
	City           string `json:"city"`
	Password       string `json:"password" validate:"required,min=8,max=30"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagAnonymous, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, reqData.Email, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

type EmailLoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=30"`
	RememberMe bool   `json:"remember_me"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EmailLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagAnonymous, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, reqData.Email, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Recover validates the password-recovery payload.
func Recover() fiber.Handler {
	return emailOnly("validatedRecover")
}

// ResendVerification validates the resend-verification payload.
func ResendVerification() fiber.Handler {
	return emailOnly("validatedResendVerification")
}

// VerifyEmail validates the email-verification payload.
func VerifyEmail() fiber.Handler {
	return emailOnly("validatedVerifyEmail")
}

func emailOnly(localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EmailRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagAnonymous, "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, reqData.Email, errors)
		}

		c.Locals(localsKey, reqData)
		return c.Next()
	}
}
