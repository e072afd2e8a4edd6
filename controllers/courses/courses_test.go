package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	courseRoutes "academy/routers/courseRoutes"
	"academy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
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

func newCourseApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:courses_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Payment{}))
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		APIKeys: []string{"test-root-key"},
	}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

func rootRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderAPIKey, "test-root-key")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestDeleteCourseDestroysRow(t *testing.T) {
	app, db := newCourseApp(t)

	status, env := rootRequest(t, app, http.MethodPost, "/add/course", fiber.Map{
		"title":   "Intro to Go",
		"content": "course content",
		"amount":  45000,
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Course created successfully!", env.Text)

	var created struct {
		UniqueID string `json:"unique_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env = rootRequest(t, app, http.MethodDelete, "/course", fiber.Map{
		"unique_id": created.UniqueID,
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Course was deleted successfully!", env.Text)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Course{}).
		Where("unique_id = ?", created.UniqueID).Count(&count).Error)
	require.EqualValues(t, 0, count)

	// The unique title index is free again.
	status, env = rootRequest(t, app, http.MethodPost, "/add/course", fiber.Map{
		"title":   "Intro to Go",
		"content": "course content",
		"amount":  45000,
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Course created successfully!", env.Text)
}

func TestDeleteCourseWithPaymentsRefused(t *testing.T) {
	app, db := newCourseApp(t)

	course := models.Course{
		UniqueID:  uuid.NewString(),
		Reference: utils.RandomReference(4),
		Title:     "Intro to Go",
		Content:   "course content",
		Amount:    45000,
	}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Create(&models.Payment{
		UniqueID:       uuid.NewString(),
		UserUniqueID:   uuid.NewString(),
		CourseUniqueID: course.UniqueID,
		Type:           models.TransactionTypePayment,
		Gateway:        models.GatewayPaystack,
		PaymentMethod:  models.PaymentMethodCard,
		Amount:         45000,
		Reference:      utils.RandomReference(7),
		PaymentStatus:  models.PaymentStatusCompleted,
	}).Error)

	status, env := rootRequest(t, app, http.MethodDelete, "/course", fiber.Map{
		"unique_id": course.UniqueID,
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Unable to delete course!", env.Text)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).
		Where("unique_id = ?", course.UniqueID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
