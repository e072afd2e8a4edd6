package enrollmentRoutes

import (
	enrollmentController "academy/controllers/enrollments"
	"academy/middleware"
	courseValidator "academy/validators/course"
	enrollmentValidator "academy/validators/enrollment"
	userValidator "academy/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	// Root channel
	app.Get("/root/enrollments", middleware.VerifyKey, enrollmentController.RootGetEnrollments)
	app.Get("/root/enrollments/via/user", middleware.VerifyKey, userValidator.FindUser(), enrollmentController.RootGetEnrollmentsViaUser)
	app.Get("/root/enrollments/via/course", middleware.VerifyKey, courseValidator.FindCourse(), enrollmentController.RootGetEnrollmentsViaCourse)
	app.Get("/root/enrollment", middleware.VerifyKey, enrollmentValidator.FindEnrollment(), enrollmentController.RootGetEnrollment)

	// User channel
	app.Get("/enrollments", middleware.JWTMiddleware, middleware.RequireUser, enrollmentController.UserGetEnrollments)
	app.Get("/enrollment", middleware.JWTMiddleware, middleware.RequireUser, enrollmentValidator.FindEnrollment(), enrollmentController.UserGetEnrollment)

	app.Put("/enrollment/status", middleware.JWTMiddleware, middleware.RequireUser, enrollmentValidator.UpdateEnrollmentStatus(), enrollmentController.UpdateEnrollmentStatus)
}
