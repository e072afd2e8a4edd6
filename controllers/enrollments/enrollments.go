package enrollmentController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	courseValidator "academy/validators/course"
	enrollmentValidator "academy/validators/enrollment"
	userValidator "academy/validators/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func userID(c *fiber.Ctx) string {
	uid, _ := c.Locals("userUniqueID").(string)
	return uid
}

func listParams(c *fiber.Ctx) (page, size int, orderBy, sortBy string) {
	page = c.QueryInt("page")
	size = c.QueryInt("size")
	orderBy = utils.OrderBy(c.Query("orderBy"))
	sortBy = utils.SortBy(c.Query("sortBy"))
	return
}

func listEnrollments(c *fiber.Ctx, tag string, scope func(*gorm.DB) *gorm.DB) error {
	db := database.Database.Db
	page, size, orderBy, sortBy := listParams(c)

	var total int64
	if err := scope(db.Model(&models.Enrollment{})).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, err.Error(), nil)
	}

	pagination := utils.Paginate(page, size, total)

	var enrollments []models.Enrollment
	err := scope(db.Preload("User").Preload("Course")).
		Where("is_deleted = ?", false).
		Order(orderBy + " " + sortBy).
		Offset(pagination.Start).
		Limit(pagination.Limit).
		Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, err.Error(), nil)
	}

	if len(enrollments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Enrollments Not found", []models.Enrollment{})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Enrollments loaded", fiber.Map{
		"count": total,
		"rows":  enrollments,
		"pages": pagination.Pages,
	})
}

// RootGetEnrollments lists every enrollment with user and course details.
func RootGetEnrollments(c *fiber.Ctx) error {
	return listEnrollments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB { return db })
}

// RootGetEnrollment loads one enrollment by unique id.
func RootGetEnrollment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindEnrollment").(*enrollmentValidator.FindEnrollmentRequest)

	var enrollment models.Enrollment
	err := database.Database.Db.Preload("User").Preload("Course").
		Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).
		First(&enrollment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, middleware.TagRoot, "Enrollment not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Enrollment loaded", enrollment)
}

// RootGetEnrollmentsViaUser lists one user's enrollments.
func RootGetEnrollmentsViaUser(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindUser").(*userValidator.FindUserRequest)
	return listEnrollments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ?", reqData.UniqueID)
	})
}

// RootGetEnrollmentsViaCourse lists one course's enrollments.
func RootGetEnrollmentsViaCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindCourse").(*courseValidator.FindCourseRequest)
	return listEnrollments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("course_unique_id = ?", reqData.UniqueID)
	})
}

// UserGetEnrollments lists the calling user's enrollments.
func UserGetEnrollments(c *fiber.Ctx) error {
	uid := userID(c)
	return listEnrollments(c, uid, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ?", uid)
	})
}

// UserGetEnrollment loads one of the calling user's enrollments.
func UserGetEnrollment(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedFindEnrollment").(*enrollmentValidator.FindEnrollmentRequest)

	var enrollment models.Enrollment
	err := database.Database.Db.Preload("Course").
		Where("unique_id = ? AND user_unique_id = ? AND is_deleted = ?", reqData.UniqueID, uid, false).
		First(&enrollment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, uid, "Enrollment not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Enrollment loaded", enrollment)
}

// UpdateEnrollmentStatus moves an enrollment through its lifecycle.
func UpdateEnrollmentStatus(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpdateEnrollmentStatus").(*enrollmentValidator.UpdateEnrollmentStatusRequest)

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error updating enrollment", nil)
	}

	result := tx.Model(&models.Enrollment{}).
		Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).
		Update("enrollment_status", reqData.Status)
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Enrollment not found", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error updating enrollment", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Details updated successfully!", nil)
}
