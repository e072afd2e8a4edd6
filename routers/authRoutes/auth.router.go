package authRoutes

import (
	authController "academy/controllers/auth"
	authValidator "academy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/auth/signup", authValidator.Signup(), authController.Signup)
	app.Post("/auth/signin/email", authValidator.Login(), authController.Login)

	app.Post("/password/recover", authValidator.Recover(), authController.PasswordRecovery)
	app.Post("/resend/email/verification", authValidator.ResendVerification(), authController.ResendVerificationEmail)
	app.Post("/email/verify", authValidator.VerifyEmail(), authController.VerifyEmail)
}
