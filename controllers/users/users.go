package userController

import (
	"log"
	"strings"

	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	commonValidator "academy/validators/common"
	userValidator "academy/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
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

func respondUsers(c *fiber.Ctx, users []models.User, total int64, pages int) error {
	if len(users) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Users Not found", []models.User{})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Users loaded", fiber.Map{
		"count": total,
		"rows":  users,
		"pages": pages,
	})
}

func listUsers(c *fiber.Ctx, scope func(*gorm.DB) *gorm.DB) error {
	db := database.Database.Db
	page, size, orderBy, sortBy := listParams(c)

	var total int64
	if err := scope(db.Model(&models.User{})).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, err.Error(), nil)
	}

	pagination := utils.Paginate(page, size, total)

	var users []models.User
	err := scope(db.Model(&models.User{})).
		Where("is_deleted = ?", false).
		Order(orderBy + " " + sortBy).
		Offset(pagination.Start).
		Limit(pagination.Limit).
		Find(&users).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, err.Error(), nil)
	}

	return respondUsers(c, users, total, pagination.Pages)
}

// RootGetUsers lists every registered account.
func RootGetUsers(c *fiber.Ctx) error {
	return listUsers(c, func(db *gorm.DB) *gorm.DB { return db })
}

// RootGetUser loads one account by unique id.
func RootGetUser(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindUser").(*userValidator.FindUserRequest)

	var user models.User
	err := database.Database.Db.
		Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).
		First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, middleware.TagRoot, "User not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "User loaded", user)
}

// RootSearchUsers matches the term against names, email and phone numbers.
func RootSearchUsers(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSearch").(*commonValidator.SearchRequest)
	like := "%" + reqData.Search + "%"
	return listUsers(c, func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"firstname LIKE ? OR middlename LIKE ? OR lastname LIKE ? OR email LIKE ? OR phone_number LIKE ?",
			like, like, like, like, like,
		)
	})
}

// GetProfile returns the calling user's own record.
func GetProfile(c *fiber.Ctx) error {
	uid := userID(c)

	var user models.User
	err := database.Database.Db.
		Where("unique_id = ? AND is_deleted = ?", uid, false).
		First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, uid, "User not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "User loaded", user)
}

func updateProfileFields(c *fiber.Ctx, uid string, fields map[string]interface{}) error {
	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error updating details", nil)
	}

	result := tx.Model(&models.User{}).
		Where("unique_id = ? AND is_deleted = ?", uid, false).
		Updates(fields)
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "User not found", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error updating details", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, uid, "Details updated successfully!", nil)
}

// UpdateNames changes the calling user's name fields.
func UpdateNames(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedUpdateNames").(*userValidator.UpdateNamesRequest)

	return updateProfileFields(c, uid, map[string]interface{}{
		"firstname":  reqData.Firstname,
		"middlename": reqData.Middlename,
		"lastname":   reqData.Lastname,
	})
}

// UpdateDetails changes the calling user's phone numbers.
func UpdateDetails(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedUpdateDetails").(*userValidator.UpdateDetailsRequest)

	return updateProfileFields(c, uid, map[string]interface{}{
		"phone_number":     reqData.PhoneNumber,
		"alt_phone_number": reqData.AltPhoneNumber,
	})
}

// UpdateAddress changes the calling user's address fields.
func UpdateAddress(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedUpdateAddress").(*userValidator.UpdateAddressRequest)

	return updateProfileFields(c, uid, map[string]interface{}{
		"address": reqData.Address,
		"country": reqData.Country,
		"state":   reqData.State,
		"city":    reqData.City,
	})
}

// UpdateProfileImage swaps the profile image and clears the previous asset
// from the file host afterwards.
func UpdateProfileImage(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedProfileImage").(*userValidator.ProfileImageRequest)

	var current models.User
	err := database.Database.Db.
		Where("unique_id = ? AND is_deleted = ?", uid, false).
		First(&current).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, uid, "User not found", nil)
	}

	resp := updateProfileFields(c, uid, map[string]interface{}{
		"profile_image":           reqData.ProfileImage,
		"profile_image_public_id": reqData.ProfileImagePublicID,
	})

	if c.Response().StatusCode() == fiber.StatusOK && current.ProfileImagePublicID != "" {
		if err := utils.DeleteAsset(current.ProfileImagePublicID); err != nil {
			log.Printf("failed to delete old profile image %s: %v", current.ProfileImagePublicID, err)
		}
	}

	return resp
}

// ChangePassword verifies the old password before storing the new hash.
func ChangePassword(c *fiber.Ctx) error {
	uid := userID(c)
	reqData := c.Locals("validatedChangePassword").(*userValidator.ChangePasswordRequest)

	var user models.User
	err := database.Database.Db.
		Where("unique_id = ? AND is_deleted = ?", uid, false).
		First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, uid, "User not found", nil)
	}

	if user.Access == models.AccessSuspended {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, uid, "Account has been suspended", nil)
	}
	if user.Access == models.AccessRevoked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, uid, "Account access has been revoked", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Privates), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, uid, "Invalid Old Password!", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.BcryptCost)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error changing password", nil)
	}

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error changing password", nil)
	}

	result := tx.Model(&models.User{}).
		Where("unique_id = ? AND is_deleted = ?", uid, false).
		Update("privates", string(hash))
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error changing password", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, uid, "Error changing password", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, user.UniqueID, "User's password changed successfully!", nil)
}

// RootUpdateUserEmail moves an account to a new address. The new address
// receives a verification link and a generated password before the change is
// stored, so a bad address never strands the account.
func RootUpdateUserEmail(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpdateEmail").(*userValidator.UpdateEmailRequest)

	email := strings.ToLower(reqData.Email)

	db := database.Database.Db

	var user models.User
	if err := db.Where("unique_id = ?", reqData.UniqueID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "User not found!", nil)
	}

	link := config.AppConfig.PrimaryDomain + "/email/verify?email=" + email + "&verification_id=" + utils.RandomReference(20)
	newPassword := strings.ToUpper(utils.RandomReference(6))

	mail := utils.EmailVerificationWithPasswordMail(link, email, newPassword)
	if err := utils.SendMail(email, mail.Subject, mail.Text, mail.HTML); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, err.Error(), nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.BcryptCost)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error updating details", nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error updating details", nil)
	}

	result := tx.Model(&models.User{}).
		Where("unique_id = ? AND is_deleted = ?", reqData.UniqueID, false).
		Updates(map[string]interface{}{
			"email":              email,
			"privates":           string(hash),
			"email_verification": false,
		})
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, middleware.TagRoot, "User not found", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, middleware.TagRoot, "Error updating details", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, middleware.TagRoot, "Details updated successfully!", nil)
}

func updateAccess(c *fiber.Ctx, uniqueID string, access int, successText, noopText string) error {
	tag := middleware.TagRoot + " | " + uniqueID

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, "Error updating access", nil)
	}

	// The guard on the current value makes repeated calls report the
	// earlier change instead of rewriting it.
	result := tx.Model(&models.User{}).
		Where("unique_id = ? AND access <> ? AND is_deleted = ?", uniqueID, access, false).
		Update("access", access)
	if result.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, "Error updating access", nil)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, tag, noopText, nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, tag, "Error updating access", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, tag, successText, nil)
}

// UpdateAccessGranted restores a user's access.
func UpdateAccessGranted(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindUser").(*userValidator.FindUserRequest)
	return updateAccess(c, reqData.UniqueID, models.AccessGranted,
		"User's access granted successfully!", "User access already granted")
}

// UpdateAccessSuspended suspends a user's access.
func UpdateAccessSuspended(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindUser").(*userValidator.FindUserRequest)
	return updateAccess(c, reqData.UniqueID, models.AccessSuspended,
		"User's access suspended successfully!", "User access already suspended")
}

// UpdateAccessRevoked revokes a user's access.
func UpdateAccessRevoked(c *fiber.Ctx) error {
	reqData := c.Locals("validatedFindUser").(*userValidator.FindUserRequest)
	return updateAccess(c, reqData.UniqueID, models.AccessRevoked,
		"User's access revoked successfully!", "User access already revoked")
}
