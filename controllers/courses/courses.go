package courseController

import (
	"log"

	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	commonValidator "academy/validators/common"
	courseValidator "academy/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func listParams(c *fiber.Ctx) (page, size int, orderBy, sortBy string) {
	page = c.QueryInt("page")
	size = c.QueryInt("size")
	orderBy = utils.OrderBy(c.Query("orderBy"))
	sortBy = utils.SortBy(c.Query("sortBy"))
	return
}

func courseSearchScope(db *gorm.DB, search string) *gorm.DB {
	like := "%" + search + "%"
	return db.Where("title LIKE ? OR reference LIKE ? OR content LIKE ?", like, like, like)
}

func respondCourses(c *fiber.Ctx, tag string, courses []models.Course, total int64, pages int) error {
	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Courses Not found", []models.Course{})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Courses loaded", fiber.Map{
		"count": total,
		"rows":  courses,
		"pages": pages,
	})
}

func listCourses(c *fiber.Ctx, tag string, scope func(*gorm.DB) *gorm.DB) error {
	db := database.Database.Db
	page, size, orderBy, sortBy := listParams(c)

	var total int64
	if err := scope(db.Model(&models.Course{})).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, err.Error(), nil)
	}

	pagination := utils.Paginate(page, size, total)

	var courses []models.Course
	err := scope(db.Model(&models.Course{})).
		Where("is_deleted = ?", false).
		Order(orderBy + " " + sortBy).
		Offset(pagination.Start).
		Limit(pagination.Limit).
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, err.Error(), nil)
	}

	return respondCourses(c, tag, courses, total, pagination.Pages)
}

// RootGetCourses lists every course in the catalog.
func RootGetCourses(c *fiber.Ctx) error {
	return listCourses(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB { return db })
}

// RootGetCourse loads one course by unique id.
func RootGetCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindCourse").(*courseValidator.FindCourseRequest)
	return getCourse(c, middleware.TagRoot, reqData.UniqueID)
}

// RootSearchCourses matches the term against title, reference and content.
func RootSearchCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSearch").(*commonValidator.SearchRequest)
	return listCourses(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return courseSearchScope(db, reqData.Search)
	})
}

// RootGetCourseViaReference loads one course by its short reference.
func RootGetCourseViaReference(c *fiber.Ctx) error {
	return getCourseViaReference(c, middleware.TagRoot)
}

// PublicGetCourseViaReference loads one course by reference for unauthenticated visitors.
func PublicGetCourseViaReference(c *fiber.Ctx) error {
	return getCourseViaReference(c, middleware.TagAnonymous)
}

func getCourseViaReference(c *fiber.Ctx, tag string) error {
	reqData := c.Locals("validatedFindCourseByReference").(*courseValidator.FindCourseByReferenceRequest)

	var course models.Course
	err := database.Database.Db.
		Where("reference = ? AND is_deleted = ?", reqData.Reference, false).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, tag, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Course loaded", course)
}

// PublicGetCourses lists the catalog for unauthenticated visitors.
func PublicGetCourses(c *fiber.Ctx) error {
	return listCourses(c, middleware.TagAnonymous, func(db *gorm.DB) *gorm.DB { return db })
}

// PublicGetCourse loads one course for unauthenticated visitors.
func PublicGetCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindCourse").(*courseValidator.FindCourseRequest)
	return getCourse(c, middleware.TagAnonymous, reqData.UniqueID)
}

// PublicSearchCourses searches the catalog for unauthenticated visitors.
func PublicSearchCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSearch").(*commonValidator.SearchRequest)
	return listCourses(c, middleware.TagAnonymous, func(db *gorm.DB) *gorm.DB {
		return courseSearchScope(db, reqData.Search)
	})
}

func getCourse(c *fiber.Ctx, tag, uniqueID string) error {
	var course models.Course
	err := database.Database.Db.
		Where("unique_id = ? AND is_deleted = ?", uniqueID, false).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, tag, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Course loaded", course)
}

// AddCourse creates a course with a generated unique id and short reference.
func AddCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAddCourse").(*courseValidator.AddCourseRequest)

	course := models.Course{
		UniqueID:     uuid.NewString(),
		Reference:    utils.RandomReference(4),
		Title:        reqData.Title,
		File:         reqData.File,
		FileType:     reqData.FileType,
		FilePublicID: reqData.FilePublicID,
		Content:      reqData.Content,
		Certificate:  reqData.Certificate,
		Amount:       reqData.Amount,
	}

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error adding course", nil)
	}

	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error adding course", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error adding course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Course created successfully!", fiber.Map{
		"unique_id": course.UniqueID,
		"reference": course.Reference,
	})
}

func updateCourseFields(c *fiber.Ctx, uniqueID string, fields map[string]interface{}) error {
	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error updating course", nil)
	}

	result := tx.Model(&models.Course{}).
		Where("unique_id = ? AND is_deleted = ?", uniqueID, false).
		Updates(fields)
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Course not found", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error updating course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Details updated successfully!", nil)
}

// UpdateCourseDetails changes a course's title, content and amount.
func UpdateCourseDetails(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpdateCourse").(*courseValidator.UpdateCourseRequest)

	return updateCourseFields(c, reqData.UniqueID, map[string]interface{}{
		"title":   reqData.Title,
		"content": reqData.Content,
		"amount":  reqData.Amount,
	})
}

// UpdateCourseImage swaps a course's file and clears the previous asset from
// the file host afterwards.
func UpdateCourseImage(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpdateCourseImage").(*courseValidator.UpdateCourseImageRequest)

	var current models.Course
	err := database.Database.Db.
		Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).
		First(&current).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Course not found", nil)
	}

	resp := updateCourseFields(c, reqData.UniqueID, map[string]interface{}{
		"file":           reqData.File,
		"file_type":      reqData.FileType,
		"file_public_id": reqData.FilePublicID,
	})

	if c.Response().StatusCode() == fiber.StatusOK && current.FilePublicID != "" {
		if err := utils.DeleteAsset(current.FilePublicID); err != nil {
			log.Printf("failed to delete old course file %s: %v", current.FilePublicID, err)
		}
	}

	return resp
}

// DeleteCourse destroys a course. Courses with payment history are kept
// so existing payment and enrollment rows stay resolvable.
func DeleteCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindCourse").(*courseValidator.FindCourseRequest)

	db := database.Database.Db

	var course models.Course
	err := db.Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, middleware.TagRoot, "Course not found", nil)
	}

	var paymentCount int64
	if err := db.Model(&models.Payment{}).Where("course_unique_id = ?", reqData.UniqueID).Count(&paymentCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, err.Error(), nil)
	}
	if paymentCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "Unable to delete course!", nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error deleting course", nil)
	}

	result := tx.Unscoped().
		Where("unique_id = ?", reqData.UniqueID).
		Delete(&models.Course{})
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error deleting course", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error deleting course", nil)
	}

	if course.FilePublicID != "" {
		if err := utils.DeleteAsset(course.FilePublicID); err != nil {
			log.Printf("failed to delete course file %s: %v", course.FilePublicID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Course was deleted successfully!", nil)
}
