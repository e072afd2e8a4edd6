package userRoutes

import (
	userController "academy/controllers/users"
	"academy/middleware"
	commonValidator "academy/validators/common"
	userValidator "academy/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	// Root channel
	app.Get("/root/users", middleware.VerifyKey, userController.RootGetUsers)
	app.Get("/root/search/users", middleware.VerifyKey, commonValidator.Search(), userController.RootSearchUsers)
	app.Get("/root/user", middleware.VerifyKey, userValidator.FindUser(), userController.RootGetUser)

	app.Put("/root/user/profile/email", middleware.VerifyKey, userValidator.UpdateEmail(), userController.RootUpdateUserEmail)
	app.Put("/root/user/access/grant", middleware.VerifyKey, userValidator.FindUser(), userController.UpdateAccessGranted)
	app.Put("/root/user/access/suspend", middleware.VerifyKey, userValidator.FindUser(), userController.UpdateAccessSuspended)
	app.Put("/root/user/access/revoke", middleware.VerifyKey, userValidator.FindUser(), userController.UpdateAccessRevoked)

	// User channel
	app.Get("/profile", middleware.JWTMiddleware, middleware.RequireUser, userController.GetProfile)
	app.Post("/password/change", middleware.JWTMiddleware, middleware.RequireUser, userValidator.ChangePassword(), userController.ChangePassword)
	app.Post("/profile/image", middleware.JWTMiddleware, middleware.RequireUser, userValidator.ProfileImage(), userController.UpdateProfileImage)
	app.Put("/profile/names", middleware.JWTMiddleware, middleware.RequireUser, userValidator.UpdateNames(), userController.UpdateNames)
	app.Put("/profile/details", middleware.JWTMiddleware, middleware.RequireUser, userValidator.UpdateDetails(), userController.UpdateDetails)
	app.Put("/profile/address", middleware.JWTMiddleware, middleware.RequireUser, userValidator.UpdateAddress(), userController.UpdateAddress)
}
