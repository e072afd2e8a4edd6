package authController

import (
	"strings"

	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	authValidator "academy/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func verificationLink(email string) string {
	return config.AppConfig.PrimaryDomain + "/email/verify?email=" + email + "&verification_id=" + utils.RandomReference(20)
}

// Signup registers a new account. The verification email goes out before the
// row is created so a dead relay never leaves an unverifiable account behind.
func Signup(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSignup").(*authValidator.SignupRequest)

	email := strings.ToLower(reqData.Email)

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ? AND is_deleted = ?", email, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, email, "User already exists!", nil)
	}

	mail := utils.EmailVerificationMail(verificationLink(email))
	if err := utils.SendMail(email, mail.Subject, mail.Text, mail.HTML); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, email, err.Error(), nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.BcryptCost)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error signing up", nil)
	}

	user := models.User{
		UniqueID:       uuid.NewString(),
		Firstname:      reqData.Firstname,
		Middlename:     reqData.Middlename,
		Lastname:       reqData.Lastname,
		Email:          email,
		PhoneNumber:    reqData.PhoneNumber,
		AltPhoneNumber: reqData.AltPhoneNumber,
		Address:        reqData.Address,
		Country:        reqData.Country,
		State:          reqData.State,
		City:           reqData.City,
		Privates:       string(hash),
		Access:         models.AccessGranted,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error signing up", nil)
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error signing up", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error signing up", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, user.UniqueID, "Signed up successfully!", nil)
}

// Login authenticates by email and password and returns a bearer token.
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.EmailLoginRequest)

	email := strings.ToLower(reqData.Email)

	var user models.User
	err := database.Database.Db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, email, "User not found", nil)
	}

	if user.Access == models.AccessSuspended {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, email, "Account has been suspended", nil)
	}
	if user.Access == models.AccessRevoked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, email, "Account access has been revoked", nil)
	}
	if !user.EmailVerification {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, email, "Unverified email", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Privates), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, email, "Invalid Password!", nil)
	}

	token, err := middleware.GenerateJWT(user.UniqueID, reqData.RememberMe)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error logging in", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, user.UniqueID, "Logged in successfully!", fiber.Map{
		"token":    token,
		"fullname": user.Fullname(),
	})
}

// PasswordRecovery mails a freshly generated password, then stores its hash.
func PasswordRecovery(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRecover").(*authValidator.EmailRequest)

	email := strings.ToLower(reqData.Email)

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, email, "User not found", nil)
	}

	if user.Access == models.AccessSuspended {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, email, "Account has been suspended", nil)
	}
	if user.Access == models.AccessRevoked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, email, "Account access has been revoked", nil)
	}

	newPassword := strings.ToUpper(utils.RandomReference(6))

	mail := utils.PasswordResetMail(newPassword)
	if err := utils.SendMail(user.Email, mail.Subject, mail.Text, mail.HTML); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, email, err.Error(), nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.BcryptCost)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, user.UniqueID, "Error generating password!", nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, user.UniqueID, "Error generating password!", nil)
	}

	result := tx.Model(&models.User{}).
		Where("unique_id = ? AND is_deleted = ?", user.UniqueID, false).
		Update("privates", string(hash))
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, user.UniqueID, "Error generating password!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, user.UniqueID, "Error generating password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, user.UniqueID, "User's password changed successfully!", nil)
}

// ResendVerificationEmail sends a fresh verification link to an existing account.
func ResendVerificationEmail(c *fiber.Ctx) error {
	reqData := c.Locals("validatedResendVerification").(*authValidator.EmailRequest)

	email := strings.ToLower(reqData.Email)

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, email, "User not found", nil)
	}

	mail := utils.EmailVerificationMail(verificationLink(user.Email))
	if err := utils.SendMail(user.Email, mail.Subject, mail.Text, mail.HTML); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, email, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, email, "Email sent successfully!", nil)
}

// VerifyEmail flips the verification flag. The guard on the current flag
// makes a second call report the earlier verification instead of rewriting it.
func VerifyEmail(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerifyEmail").(*authValidator.EmailRequest)

	email := strings.ToLower(reqData.Email)

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error verifying email", nil)
	}

	result := tx.Model(&models.User{}).
		Where("email = ? AND email_verification = ? AND is_deleted = ?", email, false, false).
		Update("email_verification", true)
	if result.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error verifying email", nil)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, email, "User email verified already", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, email, "Error verifying email", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, email, "User email verified successfully!", nil)
}
