package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/config"
	"academy/database"
	"academy/models"
	authRoutes "academy/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success  bool            `json:"success"`
	UniqueID string          `json:"unique_id"`
	Text     string          `json:"text"`
	Data     json.RawMessage `json:"data"`
}

var testDBSeq int

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB, *string) {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:auth_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	mailBody := `{"success":true,"data":{"id":"msg-1"}}`
	mailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, mailBody)
	}))
	t.Cleanup(mailSrv.Close)

	config.AppConfig = &config.Config{
		JWTKey:        "test-secret",
		BcryptCost:    bcrypt.MinCost,
		MailerURL:     mailSrv.URL,
		MailerKey:     "relay-key",
		PrimaryDomain: "https://academy.test",
	}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db, &mailBody
}

func post(t *testing.T, app *fiber.App, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest("POST", path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestSignupLoginFlow(t *testing.T) {
	app, db, _ := newAuthApp(t)

	status, env := post(t, app, "/auth/signup", fiber.Map{
		"firstname": "Ade",
		"lastname":  "Balogun",
		"email":     "Ade@Example.com",
		"password":  "superSecret1",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Signed up successfully!", env.Text)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ade@example.com").First(&user).Error)
	require.False(t, user.EmailVerification)
	require.NotEqual(t, "superSecret1", user.Privates)

	// Login is rejected until the email is verified.
	status, env = post(t, app, "/auth/signin/email", fiber.Map{
		"email":    "ade@example.com",
		"password": "superSecret1",
	})
	require.Equal(t, fiber.StatusForbidden, status)
	require.Equal(t, "Unverified email", env.Text)

	status, env = post(t, app, "/email/verify", fiber.Map{"email": "ade@example.com"})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "User email verified successfully!", env.Text)

	status, env = post(t, app, "/auth/signin/email", fiber.Map{
		"email":    "ade@example.com",
		"password": "superSecret1",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Logged in successfully!", env.Text)

	var data struct {
		Token    string `json:"token"`
		Fullname string `json:"fullname"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	require.Equal(t, "Ade Balogun", data.Fullname)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _, _ := newAuthApp(t)

	body := fiber.Map{
		"firstname": "Ade",
		"lastname":  "Balogun",
		"email":     "ade@example.com",
		"password":  "superSecret1",
	}

	status, _ := post(t, app, "/auth/signup", body)
	require.Equal(t, fiber.StatusOK, status)

	status, env := post(t, app, "/auth/signup", body)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "User already exists!", env.Text)
}

func TestSignupMailerFailureCreatesNothing(t *testing.T) {
	app, db, mailBody := newAuthApp(t)
	*mailBody = `{"success":false,"data":null,"message":"SMTP auth failed"}`

	status, env := post(t, app, "/auth/signup", fiber.Map{
		"firstname": "Ade",
		"lastname":  "Balogun",
		"email":     "ade@example.com",
		"password":  "superSecret1",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "SMTP auth failed", env.Text)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestLoginWrongPassword(t *testing.T) {
	app, db, _ := newAuthApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("superSecret1"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		UniqueID:          "0b7f55a1-3f6a-4e3c-9d2e-111111111111",
		Firstname:         "Ade",
		Lastname:          "Balogun",
		Email:             "ade@example.com",
		Privates:          string(hash),
		EmailVerification: true,
		Access:            models.AccessGranted,
	}).Error)

	status, env := post(t, app, "/auth/signin/email", fiber.Map{
		"email":    "ade@example.com",
		"password": "wrongPassword",
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
	require.Equal(t, "Invalid Password!", env.Text)
}

func TestLoginSuspendedAccount(t *testing.T) {
	app, db, _ := newAuthApp(t)

	require.NoError(t, db.Create(&models.User{
		UniqueID:          "0b7f55a1-3f6a-4e3c-9d2e-222222222222",
		Firstname:         "Ade",
		Lastname:          "Balogun",
		Email:             "ade@example.com",
		Privates:          "hash",
		EmailVerification: true,
		Access:            models.AccessSuspended,
	}).Error)

	status, env := post(t, app, "/auth/signin/email", fiber.Map{
		"email":    "ade@example.com",
		"password": "superSecret1",
	})
	require.Equal(t, fiber.StatusForbidden, status)
	require.Equal(t, "Account has been suspended", env.Text)
}

func TestVerifyEmailIdempotent(t *testing.T) {
	app, db, _ := newAuthApp(t)

	require.NoError(t, db.Create(&models.User{
		UniqueID:          "0b7f55a1-3f6a-4e3c-9d2e-333333333333",
		Firstname:         "Ade",
		Lastname:          "Balogun",
		Email:             "ade@example.com",
		Privates:          "hash",
		EmailVerification: true,
		Access:            models.AccessGranted,
	}).Error)

	status, env := post(t, app, "/email/verify", fiber.Map{"email": "ade@example.com"})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "User email verified already", env.Text)
}
