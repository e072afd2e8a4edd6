package paymentController

import (
	"log"

	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	commonValidator "academy/validators/common"
	courseValidator "academy/validators/course"
	paymentValidator "academy/validators/payment"
	userValidator "academy/validators/user"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func userID(c *fiber.Ctx) string {
	uid, _ := c.Locals("userUniqueID").(string)
	return uid
}

// rowLock takes a FOR UPDATE lock on supported dialects so concurrent
// checkouts cannot both pass the pending-payment check.
func rowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func listParams(c *fiber.Ctx) (page, size int, orderBy, sortBy string) {
	page = c.QueryInt("page")
	size = c.QueryInt("size")
	orderBy = utils.OrderBy(c.Query("orderBy"))
	sortBy = utils.SortBy(c.Query("sortBy"))
	return
}

func paymentSearchScope(db *gorm.DB, search string) *gorm.DB {
	like := "%" + search + "%"
	return db.Where(
		"reference LIKE ? OR type LIKE ? OR gateway LIKE ? OR payment_method LIKE ? OR payment_status LIKE ?",
		like, like, like, like, like,
	)
}

func respondPayments(c *fiber.Ctx, tag string, payments []models.Payment, total int64, pages int) error {
	if len(payments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Payments Not found", []models.Payment{})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, tag, "Payments loaded", fiber.Map{
		"count": total,
		"rows":  payments,
		"pages": pages,
	})
}

func listPayments(c *fiber.Ctx, tag string, scope func(*gorm.DB) *gorm.DB) error {
	db := database.Database.Db
	page, size, orderBy, sortBy := listParams(c)

	var total int64
	if err := scope(db.Model(&models.Payment{})).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, err.Error(), nil)
	}

	pagination := utils.Paginate(page, size, total)

	var payments []models.Payment
	err := scope(db.Preload("User").Preload("Course")).
		Where("is_deleted = ?", false).
		Order(orderBy + " " + sortBy).
		Offset(pagination.Start).
		Limit(pagination.Limit).
		Find(&payments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, err.Error(), nil)
	}

	return respondPayments(c, tag, payments, total, pagination.Pages)
}

// RootGetPayments lists every payment with user and course details.
func RootGetPayments(c *fiber.Ctx) error {
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB { return db })
}

// RootGetPayment loads one payment by unique id.
func RootGetPayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindPayment").(*paymentValidator.FindPaymentRequest)

	var payment models.Payment
	err := database.Database.Db.Preload("User").Preload("Course").
		Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).
		First(&payment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, middleware.TagRoot, "Payment not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Payment loaded", payment)
}

// RootSearchPayments matches the search term against reference, type,
// gateway, payment method and status.
func RootSearchPayments(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSearch").(*commonValidator.SearchRequest)
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return paymentSearchScope(db, reqData.Search)
	})
}

// RootGetPaymentsViaUser lists one user's payments.
func RootGetPaymentsViaUser(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindUser").(*userValidator.FindUserRequest)
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ?", reqData.UniqueID)
	})
}

// RootGetPaymentsViaCourse lists one course's payments.
func RootGetPaymentsViaCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindCourse").(*courseValidator.FindCourseRequest)
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("course_unique_id = ?", reqData.UniqueID)
	})
}

// RootGetPaymentsViaReference lists one reference group's payments.
func RootGetPaymentsViaReference(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReference").(*paymentValidator.ReferenceRequest)
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("reference = ?", reqData.Reference)
	})
}

// RootGetPaymentsViaType lists payments of one transaction type.
func RootGetPaymentsViaType(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindViaType").(*paymentValidator.FindViaTypeRequest)
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ?", reqData.Type)
	})
}

// RootGetPaymentsViaGateway lists payments routed through one gateway.
func RootGetPaymentsViaGateway(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindViaGateway").(*paymentValidator.FindViaGatewayRequest)
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("gateway = ?", reqData.Gateway)
	})
}

// RootGetPaymentsViaStatus lists payments in one lifecycle status.
func RootGetPaymentsViaStatus(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindViaStatus").(*paymentValidator.FindViaStatusRequest)
	return listPayments(c, middleware.TagRoot, func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_status = ?", reqData.Status)
	})
}

// PublicGetPayments lists payments by reference for unauthenticated
// checkout status pages.
func PublicGetPayments(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReference").(*paymentValidator.ReferenceRequest)
	return listPayments(c, middleware.TagAnonymous, func(db *gorm.DB) *gorm.DB {
		return db.Where("reference = ?", reqData.Reference)
	})
}

// PublicGetPayment loads one payment by unique id for unauthenticated callers.
func PublicGetPayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindPayment").(*paymentValidator.FindPaymentRequest)

	var payment models.Payment
	err := database.Database.Db.Preload("User").Preload("Course").
		Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).
		First(&payment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, middleware.TagAnonymous, "Payment not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagAnonymous, "Payment loaded", payment)
}

// UserGetPayments lists the calling user's payments.
func UserGetPayments(c *fiber.Ctx) error {
	uid := userID(c)
	return listPayments(c, uid, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ?", uid)
	})
}

// UserGetPayment loads one of the calling user's payments.
func UserGetPayment(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedFindPayment").(*paymentValidator.FindPaymentRequest)

	var payment models.Payment
	err := database.Database.Db.Preload("Course").
		Where("unique_id = ? AND user_unique_id = ? AND is_deleted = ?", reqData.UniqueID, uid, false).
		First(&payment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, uid, "Payment not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Payment loaded", payment)
}

// UserSearchPayments searches within the calling user's payments.
func UserSearchPayments(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedSearch").(*commonValidator.SearchRequest)
	return listPayments(c, uid, func(db *gorm.DB) *gorm.DB {
		return paymentSearchScope(db, reqData.Search).Where("user_unique_id = ?", uid)
	})
}

// UserGetPaymentsViaCourse lists the calling user's payments for one course.
func UserGetPaymentsViaCourse(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedFindCourse").(*courseValidator.FindCourseRequest)
	return listPayments(c, uid, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ? AND course_unique_id = ?", uid, reqData.UniqueID)
	})
}

// UserGetPaymentsViaReference lists the calling user's payments in one
// reference group.
func UserGetPaymentsViaReference(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedReference").(*paymentValidator.ReferenceRequest)
	return listPayments(c, uid, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ? AND reference = ?", uid, reqData.Reference)
	})
}

// UserGetPaymentsViaType lists the calling user's payments of one type.
func UserGetPaymentsViaType(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedFindViaType").(*paymentValidator.FindViaTypeRequest)
	return listPayments(c, uid, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ? AND type = ?", uid, reqData.Type)
	})
}

// UserGetPaymentsViaGateway lists the calling user's payments through one gateway.
func UserGetPaymentsViaGateway(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedFindViaGateway").(*paymentValidator.FindViaGatewayRequest)
	return listPayments(c, uid, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ? AND gateway = ?", uid, reqData.Gateway)
	})
}

// UserGetPaymentsViaStatus lists the calling user's payments in one status.
func UserGetPaymentsViaStatus(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedFindViaStatus").(*paymentValidator.FindViaStatusRequest)
	return listPayments(c, uid, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_unique_id = ? AND payment_status = ?", uid, reqData.Status)
	})
}

// AddPayment opens a Processing payment for one course. A user can hold at
// most one Processing payment per course; the duplicate answer carries the
// existing reference so the client can resume that checkout.
func AddPayment(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedAddPayment").(*paymentValidator.AddPaymentRequest)

	db := database.Database.Db

	var user models.User
	if err := db.Where("unique_id = ? AND is_deleted = ?", uid, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "User not found", nil)
	}

	var course models.Course
	if err := db.Where("unique_id = ? AND is_deleted = ?", reqData.CourseUniqueID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "Course not found", nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error adding payment", nil)
	}

	var existing models.Payment
	err := rowLock(tx).
		Where("user_unique_id = ? AND course_unique_id = ? AND type = ? AND payment_status = ? AND is_deleted = ?",
			uid, reqData.CourseUniqueID, models.TransactionTypePayment, models.PaymentStatusProcessing, false).
		First(&existing).Error
	if err == nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "You have a pending payment!!", fiber.Map{
			"reference": existing.Reference,
		})
	}

	reference := reqData.Reference
	if reference == "" {
		reference = utils.RandomReference(4)
	}

	payment := models.Payment{
		UniqueID:       uuid.NewString(),
		UserUniqueID:   uid,
		CourseUniqueID: course.UniqueID,
		Type:           models.TransactionTypePayment,
		Gateway:        reqData.Gateway,
		PaymentMethod:  models.PaymentMethodCard,
		Amount:         course.Amount,
		Reference:      reference,
		PaymentStatus:  models.PaymentStatusProcessing,
		Details:        "NGN " + utils.FormatAmount(course.Amount) + " payment, via " + models.PaymentMethodCard + " for " + course.Title + " course",
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error adding payment", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error adding payment", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Payment created successfully!", fiber.Map{
		"unique_id": payment.UniqueID,
		"reference": payment.Reference,
		"amount":    payment.Amount,
	})
}

// AddMultiplePayment opens Processing payments for several courses under one
// shared reference. All rows are created or none are.
func AddMultiplePayment(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedAddMultiplePayment").(*paymentValidator.AddMultiplePaymentRequest)

	db := database.Database.Db

	var user models.User
	if err := db.Where("unique_id = ? AND is_deleted = ?", uid, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "User not found", nil)
	}

	var courses []models.Course
	if err := db.Where("unique_id IN ? AND is_deleted = ?", reqData.Courses, false).Find(&courses).Error; err != nil || len(courses) != len(reqData.Courses) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "One or more courses not found", nil)
	}

	sumTotal := 0
	for _, course := range courses {
		sumTotal += course.Amount
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error adding payments", nil)
	}

	var existing models.Payment
	err := rowLock(tx).
		Where("user_unique_id = ? AND course_unique_id IN ? AND type = ? AND payment_status = ? AND is_deleted = ?",
			uid, reqData.Courses, models.TransactionTypePayment, models.PaymentStatusProcessing, false).
		First(&existing).Error
	if err == nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "You have one or more pending course payments!!", nil)
	}

	reference := reqData.Reference
	if reference == "" {
		reference = utils.RandomReference(7)
	}

	payments := make([]models.Payment, 0, len(courses))
	for _, course := range courses {
		payments = append(payments, models.Payment{
			UniqueID:       uuid.NewString(),
			UserUniqueID:   uid,
			CourseUniqueID: course.UniqueID,
			Type:           models.TransactionTypePayment,
			Gateway:        reqData.Gateway,
			PaymentMethod:  models.PaymentMethodCard,
			Amount:         course.Amount,
			Reference:      reference,
			PaymentStatus:  models.PaymentStatusProcessing,
			Details:        "NGN " + utils.FormatAmount(course.Amount) + " payment, via " + models.PaymentMethodCard + " for " + course.Title + " course",
		})
	}

	if err := tx.Create(&payments).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error adding payments", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error adding payments", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Payments created successfully!", fiber.Map{
		"reference": reference,
		"amount":    sumTotal,
	})
}

// CancelPayment cancels one Processing payment by unique id. The
// notification email goes first; a relay failure leaves the payment untouched.
func CancelPayment(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedFindPayment").(*paymentValidator.FindPaymentRequest)

	db := database.Database.Db

	var user models.User
	if err := db.Where("unique_id = ? AND is_deleted = ?", uid, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "User not found!", nil)
	}

	var payment models.Payment
	err := db.Where("unique_id = ? AND user_unique_id = ? AND type = ? AND payment_status = ? AND is_deleted = ?",
		reqData.UniqueID, uid, models.TransactionTypePayment, models.PaymentStatusProcessing, false).
		First(&payment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "Processing Payment not found!", nil)
	}

	var course models.Course
	if err := db.Where("unique_id = ? AND is_deleted = ?", payment.CourseUniqueID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "Course not found!", nil)
	}

	mail := utils.CancelPaymentMail(course.Title)
	if err := utils.SendMail(user.Email, mail.Subject, mail.Text, mail.HTML); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, err.Error(), nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error cancelling payment", nil)
	}

	result := tx.Model(&models.Payment{}).
		Where("unique_id = ? AND is_deleted = ?", payment.UniqueID, false).
		Update("payment_status", models.PaymentStatusCancelled)
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Payment not found", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error cancelling payment", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Payment was cancelled successfully!", nil)
}

// CancelPaymentViaReference cancels every Processing payment in one
// reference group.
func CancelPaymentViaReference(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedReference").(*paymentValidator.ReferenceRequest)

	db := database.Database.Db

	var user models.User
	if err := db.Where("unique_id = ? AND is_deleted = ?", uid, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "User not found!", nil)
	}

	var payment models.Payment
	err := db.Where("user_unique_id = ? AND reference = ? AND type = ? AND payment_status = ? AND is_deleted = ?",
		uid, reqData.Reference, models.TransactionTypePayment, models.PaymentStatusProcessing, false).
		First(&payment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "Processing Payment not found!", nil)
	}

	mail := utils.CancelPaymentViaReferenceMail(reqData.Reference)
	if err := utils.SendMail(user.Email, mail.Subject, mail.Text, mail.HTML); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, err.Error(), nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error cancelling payment", nil)
	}

	result := tx.Model(&models.Payment{}).
		Where("reference = ? AND type = ? AND payment_status = ? AND is_deleted = ?",
			reqData.Reference, models.TransactionTypePayment, models.PaymentStatusProcessing, false).
		Update("payment_status", models.PaymentStatusCancelled)
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Payment not found", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error cancelling payment", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Payment was cancelled successfully!", nil)
}

// UserCompletePayment completes the calling user's payment batch.
func UserCompletePayment(c *fiber.Ctx) error {
	return completePayment(c, userID(c))
}

// RootCompletePayment completes a payment batch on behalf of the user named
// in the request.
func RootCompletePayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReference").(*paymentValidator.ReferenceRequest)
	return completePayment(c, reqData.UserUniqueID)
}

// completePayment drives the full completion workflow for one reference
// group: verify the charge with the gateway where a card was used, notify the
// user, then flip the batch to Completed and enroll the user in every paid
// course inside one transaction.
func completePayment(c *fiber.Ctx, uid string) error {
	reqData := c.Locals("validatedReference").(*paymentValidator.ReferenceRequest)

	db := database.Database.Db

	var user models.User
	if err := db.Where("unique_id = ? AND is_deleted = ?", uid, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagAnonymous, "User not found!", nil)
	}

	var payments []models.Payment
	err := db.Where("user_unique_id = ? AND reference = ? AND type = ? AND payment_status = ? AND is_deleted = ?",
		uid, reqData.Reference, models.TransactionTypePayment, models.PaymentStatusProcessing, false).
		Find(&payments).Error
	if err != nil || len(payments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "Processing Payment not found!", nil)
	}

	courseIDs := make([]string, 0, len(payments))
	for _, p := range payments {
		courseIDs = append(courseIDs, p.CourseUniqueID)
	}

	var sumTotal int
	row := db.Model(&models.Course{}).Select("COALESCE(SUM(amount), 0)").Where("unique_id IN ?", courseIDs)
	if err := row.Scan(&sumTotal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, err.Error(), nil)
	}

	// Card charges are held by the gateway until verified; wallet and
	// transfer payments have no external charge to check.
	if payments[0].PaymentMethod == models.PaymentMethodCard {
		verifier, err := utils.VerifierFor(payments[0].Gateway)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, err.Error(), nil)
		}
		if err := verifier.Verify(reqData.Reference); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, err.Error(), nil)
		}
	}

	mail := utils.CompletePaymentMail(reqData.Reference, "NGN "+utils.FormatAmount(sumTotal))
	if err := utils.SendMail(user.Email, mail.Subject, mail.Text, mail.HTML); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, err.Error(), nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error completing payment", nil)
	}

	result := tx.Model(&models.Payment{}).
		Where("user_unique_id = ? AND reference = ? AND type = ? AND is_deleted = ?",
			uid, reqData.Reference, models.TransactionTypePayment, false).
		Update("payment_status", models.PaymentStatusCompleted)
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error completing payment", nil)
	}

	enrollments := make([]models.Enrollment, 0, len(payments))
	for _, p := range payments {
		enrollments = append(enrollments, models.Enrollment{
			UniqueID:         uuid.NewString(),
			UserUniqueID:     uid,
			CourseUniqueID:   p.CourseUniqueID,
			EnrollmentStatus: models.EnrollmentStatusOngoing,
		})
	}

	if err := tx.Create(&enrollments).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error adding payments", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error completing payment", nil)
	}

	log.Printf("payment batch %s completed for user %s, %d enrollment(s)", reqData.Reference, uid, len(enrollments))

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Payment was completed successfully!", nil)
}

// DeletePayment destroys one payment record by unique id.
func DeletePayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindPayment").(*paymentValidator.FindPaymentRequest)

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error deleting payment", nil)
	}

	result := tx.Unscoped().
		Where("unique_id = ?", reqData.UniqueID).
		Delete(&models.Payment{})
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error deleting payment", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error deleting payment", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Payment was deleted successfully!", nil)
}
