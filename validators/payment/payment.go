package paymentValidator

import (
	"strings"

	"academy/middleware"
	"academy/models"
	"academy/utils/validation"

	"github.com/gofiber/fiber/v2"
)

func userTag(c *fiber.Ctx) string {
	if uid, ok := c.Locals("userUniqueID").(string); ok && uid != "" {
		return uid
	}
	return middleware.TagAnonymous
}

type AddPaymentRequest struct {
	CourseUniqueID string `json:"course_unique_id" validate:"required,uuid4"`
	Gateway        string `json:"gateway" validate:"required"`
	Reference      string `json:"reference"`
}

func AddPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddPaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		reqData.Gateway = strings.ToUpper(reqData.Gateway)
		if !models.ValidGateway(reqData.Gateway) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid transaction gateway!", nil)
		}

		c.Locals("validatedAddPayment", reqData)
		return c.Next()
	}
}

type AddMultiplePaymentRequest struct {
	Courses   []string `json:"courses" validate:"required,min=1,dive,uuid4"`
	Gateway   string   `json:"gateway" validate:"required"`
	Reference string   `json:"reference"`
}

func AddMultiplePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddMultiplePaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		reqData.Gateway = strings.ToUpper(reqData.Gateway)
		if !models.ValidGateway(reqData.Gateway) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid transaction gateway!", nil)
		}

		c.Locals("validatedAddMultiplePayment", reqData)
		return c.Next()
	}
}

type FindPaymentRequest struct {
	UniqueID string `json:"unique_id" query:"unique_id" validate:"required,uuid4"`
}

func FindPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindPaymentRequest)
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

		c.Locals("validatedFindPayment", reqData)
		return c.Next()
	}
}

// ReferenceRequest carries a payment reference. UserUniqueID is only
// honoured on the root channel, where the acting user is not implied
// by the token.
type ReferenceRequest struct {
	Reference    string `json:"reference" query:"reference" validate:"required"`
	UserUniqueID string `json:"user_unique_id"`
}

func Reference() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReferenceRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request!", nil)
		}
		// The reference and user id may be split across query and body.
		if c.Method() != fiber.MethodGet && len(c.Body()) > 0 {
			body := new(ReferenceRequest)
			if err := c.BodyParser(body); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request body!", nil)
			}
			if reqData.Reference == "" {
				reqData.Reference = body.Reference
			}
			if reqData.UserUniqueID == "" {
				reqData.UserUniqueID = body.UserUniqueID
			}
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedReference", reqData)
		return c.Next()
	}
}

type FindViaTypeRequest struct {
	Type string `json:"type" query:"type" validate:"required,oneof=Payment Refund"`
}

func FindViaType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindViaTypeRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedFindViaType", reqData)
		return c.Next()
	}
}

type FindViaGatewayRequest struct {
	Gateway string `json:"gateway" query:"gateway" validate:"required"`
}

func FindViaGateway() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindViaGatewayRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		reqData.Gateway = strings.ToUpper(reqData.Gateway)
		if !models.ValidGateway(reqData.Gateway) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid transaction gateway!", nil)
		}

		c.Locals("validatedFindViaGateway", reqData)
		return c.Next()
	}
}

type FindViaStatusRequest struct {
	Status string `json:"status" query:"status" validate:"required,oneof=Processing Completed Cancelled Refunded"`
}

func FindViaStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FindViaStatusRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, userTag(c), "Invalid request!", nil)
		}

		if errors := validation.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, userTag(c), errors)
		}

		c.Locals("validatedFindViaStatus", reqData)
		return c.Next()
	}
}
