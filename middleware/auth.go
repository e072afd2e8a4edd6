package middleware

import (
	"academy/config"
	"academy/database"
	"academy/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT issues a signed token carrying the user's unique id. Lifetime is
// 24 hours, or 7 days when the user picked "remember me" at login.
func GenerateJWT(userUniqueID string, rememberMe bool) (string, error) {
	lifetime := 24 * time.Hour
	if rememberMe {
		lifetime = 7 * 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"user_unique_id": userUniqueID,
		"iat":            time.Now().Unix(),
		"exp":            time.Now().Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware checks for a valid bearer token and stores the user unique id
// in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusForbidden, false, TagAnonymous, "No token provided!", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, TagAnonymous, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, TagAnonymous, "Unauthorized!", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_unique_id"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, TagAnonymous, "Invalid token!", nil)
	}

	userUniqueID, ok := claims["user_unique_id"].(string)
	if !ok || userUniqueID == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, TagAnonymous, "Invalid token!", nil)
	}

	c.Locals("userUniqueID", userUniqueID)
	return c.Next()
}

// RequireUser resolves the token's user to a live row. Soft-deleted, suspended
// and revoked accounts are rejected before any domain logic runs.
func RequireUser(c *fiber.Ctx) error {
	userUniqueID, ok := c.Locals("userUniqueID").(string)
	if !ok || userUniqueID == "" {
		return JsonResponse(c, fiber.StatusForbidden, false, TagAnonymous, "Require User!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("unique_id = ?", userUniqueID).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusForbidden, false, userUniqueID, "Require User!", nil)
	}

	if user.IsDeleted {
		return JsonResponse(c, fiber.StatusForbidden, false, userUniqueID, "User not available!", nil)
	}

	if user.Access != models.AccessGranted {
		text := "Access is revoked"
		if user.Access == models.AccessSuspended {
			text = "Access is suspended"
		}
		return JsonResponse(c, fiber.StatusForbidden, false, userUniqueID, text, nil)
	}

	return c.Next()
}
