package paymentRoutes

import (
	paymentController "academy/controllers/payments"
	"academy/middleware"
	commonValidator "academy/validators/common"
	courseValidator "academy/validators/course"
	paymentValidator "academy/validators/payment"
	userValidator "academy/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	// Root channel
	app.Get("/root/payments", middleware.VerifyKey, paymentController.RootGetPayments)
	app.Get("/root/payments/via/user", middleware.VerifyKey, userValidator.FindUser(), paymentController.RootGetPaymentsViaUser)
	app.Get("/root/payments/via/course", middleware.VerifyKey, courseValidator.FindCourse(), paymentController.RootGetPaymentsViaCourse)
	app.Get("/root/payments/via/type", middleware.VerifyKey, paymentValidator.FindViaType(), paymentController.RootGetPaymentsViaType)
	app.Get("/root/payments/via/gateway", middleware.VerifyKey, paymentValidator.FindViaGateway(), paymentController.RootGetPaymentsViaGateway)
	app.Get("/root/payments/via/payment_status", middleware.VerifyKey, paymentValidator.FindViaStatus(), paymentController.RootGetPaymentsViaStatus)
	app.Get("/root/payments/via/reference", middleware.VerifyKey, paymentValidator.Reference(), paymentController.RootGetPaymentsViaReference)
	app.Get("/root/search/payments", middleware.VerifyKey, commonValidator.Search(), paymentController.RootSearchPayments)
	app.Get("/root/payment", middleware.VerifyKey, paymentValidator.FindPayment(), paymentController.RootGetPayment)

	app.Put("/root/complete/payments", middleware.VerifyKey, paymentValidator.Reference(), paymentController.RootCompletePayment)
	app.Delete("/payment", middleware.VerifyKey, paymentValidator.FindPayment(), paymentController.DeletePayment)

	// User channel
	app.Get("/payments", middleware.JWTMiddleware, middleware.RequireUser, paymentController.UserGetPayments)
	app.Get("/payments/via/course", middleware.JWTMiddleware, middleware.RequireUser, courseValidator.FindCourse(), paymentController.UserGetPaymentsViaCourse)
	app.Get("/payments/via/type", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.FindViaType(), paymentController.UserGetPaymentsViaType)
	app.Get("/payments/via/gateway", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.FindViaGateway(), paymentController.UserGetPaymentsViaGateway)
	app.Get("/payments/via/payment_status", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.FindViaStatus(), paymentController.UserGetPaymentsViaStatus)
	app.Get("/payments/via/reference", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.Reference(), paymentController.UserGetPaymentsViaReference)
	app.Get("/search/payments", middleware.JWTMiddleware, middleware.RequireUser, commonValidator.Search(), paymentController.UserSearchPayments)
	app.Get("/payment", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.FindPayment(), paymentController.UserGetPayment)

	app.Post("/add/payment", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.AddPayment(), paymentController.AddPayment)
	app.Post("/add/multiple/payments", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.AddMultiplePayment(), paymentController.AddMultiplePayment)

	app.Put("/complete/payments", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.Reference(), paymentController.UserCompletePayment)
	app.Put("/cancel/payment", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.FindPayment(), paymentController.CancelPayment)
	app.Put("/cancel/payments/via/reference", middleware.JWTMiddleware, middleware.RequireUser, paymentValidator.Reference(), paymentController.CancelPaymentViaReference)

	// Public channel
	app.Get("/public/payments/via/reference", paymentValidator.Reference(), paymentController.PublicGetPayments)
	app.Get("/public/payment", paymentValidator.FindPayment(), paymentController.PublicGetPayment)
}
