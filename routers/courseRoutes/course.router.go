package courseRoutes

import (
	courseController "academy/controllers/courses"
	"academy/middleware"
	commonValidator "academy/validators/common"
	courseValidator "academy/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	// Root channel
	app.Get("/root/courses", middleware.VerifyKey, courseController.RootGetCourses)
	app.Get("/root/courses/via/reference", middleware.VerifyKey, courseValidator.FindCourseByReference(), courseController.RootGetCourseViaReference)
	app.Get("/root/search/courses", middleware.VerifyKey, commonValidator.Search(), courseController.RootSearchCourses)
	app.Get("/root/course", middleware.VerifyKey, courseValidator.FindCourse(), courseController.RootGetCourse)

	app.Post("/add/course", middleware.VerifyKey, courseValidator.AddCourse(), courseController.AddCourse)
	app.Put("/update/course/details", middleware.VerifyKey, courseValidator.UpdateCourse(), courseController.UpdateCourseDetails)
	app.Put("/update/course/image", middleware.VerifyKey, courseValidator.UpdateCourseImage(), courseController.UpdateCourseImage)
	app.Delete("/course", middleware.VerifyKey, courseValidator.FindCourse(), courseController.DeleteCourse)

	// Public channel
	app.Get("/public/courses", courseController.PublicGetCourses)
	app.Get("/public/course", courseValidator.FindCourse(), courseController.PublicGetCourse)
	app.Get("/public/search/courses", commonValidator.Search(), courseController.PublicSearchCourses)
	app.Get("/public/course/via/reference", courseValidator.FindCourseByReference(), courseController.PublicGetCourseViaReference)
}
