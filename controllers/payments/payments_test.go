package paymentController_test

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
	"academy/middleware"
	"academy/models"
	paymentRoutes "academy/routers/paymentRoutes"
	"academy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
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

type testEnv struct {
	app         *fiber.App
	db          *gorm.DB
	user        models.User
	token       string
	mailCalls   *int
	mailBody    string
	gatewayBody string
}

var testDBSeq int

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:payments_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.AppDefault{},
		&models.User{},
		&models.Course{},
		&models.Payment{},
		&models.Enrollment{},
	))
	database.Database = database.DbInstance{Db: db}

	env := &testEnv{db: db, mailCalls: new(int), mailBody: `{"success":true,"data":{"id":"msg-1"}}`}

	mailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*env.mailCalls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, env.mailBody)
	}))
	t.Cleanup(mailSrv.Close)

	env.gatewayBody = `{"status":true,"data":{"status":"success"}}`
	gatewaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, env.gatewayBody)
	}))
	t.Cleanup(gatewaySrv.Close)

	config.AppConfig = &config.Config{
		JWTKey:            "test-secret",
		APIKeys:           []string{"test-root-key"},
		MailerURL:         mailSrv.URL,
		MailerKey:         "relay-key",
		PaystackVerifyURL: gatewaySrv.URL + "/",
		SquadVerifyURL:    gatewaySrv.URL + "/",
	}

	env.user = models.User{
		UniqueID:          uuid.NewString(),
		Firstname:         "Ade",
		Lastname:          "Balogun",
		Email:             "ade@example.com",
		Privates:          "hash",
		EmailVerification: true,
		Access:            models.AccessGranted,
	}
	require.NoError(t, db.Create(&env.user).Error)

	require.NoError(t, db.Create(&models.AppDefault{
		UniqueID: uuid.NewString(),
		Criteria: models.CriteriaPaystackSecretKey,
		DataType: "STRING",
		Value:    datatypes.JSON([]byte(`"sk_test_secret"`)),
	}).Error)

	env.token, err = middleware.GenerateJWT(env.user.UniqueID, false)
	require.NoError(t, err)

	env.app = fiber.New()
	paymentRoutes.SetupPaymentRoutes(env.app)

	return env
}

func (e *testEnv) addCourse(t *testing.T, title string, amount int) models.Course {
	t.Helper()
	course := models.Course{
		UniqueID:  uuid.NewString(),
		Reference: utils.RandomReference(4),
		Title:     title,
		Content:   "course content",
		Amount:    amount,
	}
	require.NoError(t, e.db.Create(&course).Error)
	return course
}

func doRequest(t *testing.T, e *testEnv, method, path string, body interface{}, auth string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch auth {
	case "user":
		req.Header.Set("Authorization", "Bearer "+e.token)
	case "root":
		req.Header.Set(middleware.HeaderAPIKey, "test-root-key")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestAddPaymentCreatesProcessing(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	status, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "paystack",
	}, "user")

	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)
	require.Equal(t, "Payment created successfully!", env.Text)

	var payment models.Payment
	require.NoError(t, e.db.Where("user_unique_id = ?", e.user.UniqueID).First(&payment).Error)
	require.Equal(t, models.PaymentStatusProcessing, payment.PaymentStatus)
	require.Equal(t, models.GatewayPaystack, payment.Gateway)
	require.Equal(t, models.PaymentMethodCard, payment.PaymentMethod)
	require.Equal(t, 45000, payment.Amount)
	require.Equal(t, "NGN 45,000 payment, via Credit/Debit Card for Intro to Go course", payment.Details)
	require.Len(t, payment.Reference, 8)
}

func TestAddPaymentRejectsDuplicatePending(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	body := fiber.Map{"course_unique_id": course.UniqueID, "gateway": "PAYSTACK"}

	status, first := doRequest(t, e, "POST", "/add/payment", body, "user")
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, first.Success)

	status, second := doRequest(t, e, "POST", "/add/payment", body, "user")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.False(t, second.Success)
	require.Equal(t, "You have a pending payment!!", second.Text)

	var data struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(second.Data, &data))
	require.NotEmpty(t, data.Reference)

	var count int64
	require.NoError(t, e.db.Model(&models.Payment{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddPaymentUnknownGateway(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	status, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "STRIPE",
	}, "user")

	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Invalid transaction gateway!", env.Text)
}

func TestAddMultiplePaymentSharesReference(t *testing.T) {
	e := newTestEnv(t)
	first := e.addCourse(t, "Intro to Go", 45000)
	second := e.addCourse(t, "Advanced Go", 80000)

	status, env := doRequest(t, e, "POST", "/add/multiple/payments", fiber.Map{
		"courses": []string{first.UniqueID, second.UniqueID},
		"gateway": "SQUAD",
	}, "user")

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payments created successfully!", env.Text)

	var data struct {
		Reference string `json:"reference"`
		Amount    int    `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, 125000, data.Amount)

	var payments []models.Payment
	require.NoError(t, e.db.Find(&payments).Error)
	require.Len(t, payments, 2)
	for _, p := range payments {
		require.Equal(t, data.Reference, p.Reference)
		require.Equal(t, models.PaymentStatusProcessing, p.PaymentStatus)
	}
}

func TestAddMultiplePaymentMissingCourse(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	status, env := doRequest(t, e, "POST", "/add/multiple/payments", fiber.Map{
		"courses": []string{course.UniqueID, uuid.NewString()},
		"gateway": "PAYSTACK",
	}, "user")

	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "One or more courses not found", env.Text)

	var count int64
	require.NoError(t, e.db.Model(&models.Payment{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCompletePaymentHappyPath(t *testing.T) {
	e := newTestEnv(t)
	first := e.addCourse(t, "Intro to Go", 45000)
	second := e.addCourse(t, "Advanced Go", 80000)

	_, env := doRequest(t, e, "POST", "/add/multiple/payments", fiber.Map{
		"courses": []string{first.UniqueID, second.UniqueID},
		"gateway": "PAYSTACK",
	}, "user")

	var created struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, done := doRequest(t, e, "PUT", "/complete/payments", fiber.Map{
		"reference": created.Reference,
	}, "user")

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payment was completed successfully!", done.Text)
	require.Equal(t, 1, *e.mailCalls)

	var completed int64
	require.NoError(t, e.db.Model(&models.Payment{}).
		Where("payment_status = ?", models.PaymentStatusCompleted).Count(&completed).Error)
	require.EqualValues(t, 2, completed)

	var enrollments []models.Enrollment
	require.NoError(t, e.db.Find(&enrollments).Error)
	require.Len(t, enrollments, 2)
	for _, en := range enrollments {
		require.Equal(t, models.EnrollmentStatusOngoing, en.EnrollmentStatus)
		require.Equal(t, e.user.UniqueID, en.UserUniqueID)
	}

	// A second completion finds no Processing rows and adds nothing.
	status, again := doRequest(t, e, "PUT", "/complete/payments", fiber.Map{
		"reference": created.Reference,
	}, "user")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Processing Payment not found!", again.Text)

	var enrollmentCount int64
	require.NoError(t, e.db.Model(&models.Enrollment{}).Count(&enrollmentCount).Error)
	require.EqualValues(t, 2, enrollmentCount)
}

func TestCompletePaymentGatewayRejection(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	_, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "PAYSTACK",
	}, "user")

	var created struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	e.gatewayBody = `{"status":true,"data":{"status":"abandoned"}}`

	status, failed := doRequest(t, e, "PUT", "/complete/payments", fiber.Map{
		"reference": created.Reference,
	}, "user")

	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Payment unsuccessful (Status - ABANDONED)", failed.Text)
	require.Equal(t, 0, *e.mailCalls)

	var payment models.Payment
	require.NoError(t, e.db.First(&payment).Error)
	require.Equal(t, models.PaymentStatusProcessing, payment.PaymentStatus)

	var enrollmentCount int64
	require.NoError(t, e.db.Model(&models.Enrollment{}).Count(&enrollmentCount).Error)
	require.EqualValues(t, 0, enrollmentCount)
}

func TestCompletePaymentMissingGatewaySecret(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	_, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "SQUAD",
	}, "user")

	var created struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, failed := doRequest(t, e, "PUT", "/complete/payments", fiber.Map{
		"reference": created.Reference,
	}, "user")

	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "App Default for Squad Gateway not found!", failed.Text)
}

func TestRootCompletePayment(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	_, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "PAYSTACK",
	}, "user")

	var created struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, done := doRequest(t, e, "PUT", "/root/complete/payments", fiber.Map{
		"reference":      created.Reference,
		"user_unique_id": e.user.UniqueID,
	}, "root")

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payment was completed successfully!", done.Text)

	var enrollmentCount int64
	require.NoError(t, e.db.Model(&models.Enrollment{}).Count(&enrollmentCount).Error)
	require.EqualValues(t, 1, enrollmentCount)
}

func TestCancelPaymentViaReference(t *testing.T) {
	e := newTestEnv(t)
	first := e.addCourse(t, "Intro to Go", 45000)
	second := e.addCourse(t, "Advanced Go", 80000)

	_, env := doRequest(t, e, "POST", "/add/multiple/payments", fiber.Map{
		"courses": []string{first.UniqueID, second.UniqueID},
		"gateway": "PAYSTACK",
	}, "user")

	var created struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, done := doRequest(t, e, "PUT", "/cancel/payments/via/reference", fiber.Map{
		"reference": created.Reference,
	}, "user")

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payment was cancelled successfully!", done.Text)
	require.Equal(t, 1, *e.mailCalls)

	var cancelled int64
	require.NoError(t, e.db.Model(&models.Payment{}).
		Where("payment_status = ?", models.PaymentStatusCancelled).Count(&cancelled).Error)
	require.EqualValues(t, 2, cancelled)
}

func TestCancelPaymentMailerFailureKeepsProcessing(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	_, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "PAYSTACK",
	}, "user")

	var created struct {
		UniqueID string `json:"unique_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	e.mailBody = `{"success":false,"data":null,"message":"SMTP auth failed"}`

	status, failed := doRequest(t, e, "PUT", "/cancel/payment", fiber.Map{
		"unique_id": created.UniqueID,
	}, "user")

	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "SMTP auth failed", failed.Text)

	var payment models.Payment
	require.NoError(t, e.db.First(&payment).Error)
	require.Equal(t, models.PaymentStatusProcessing, payment.PaymentStatus)
}

func TestCancelPaymentOnlyFromProcessing(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	_, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "PAYSTACK",
	}, "user")

	var created struct {
		UniqueID  string `json:"unique_id"`
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, done := doRequest(t, e, "PUT", "/complete/payments", fiber.Map{
		"reference": created.Reference,
	}, "user")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payment was completed successfully!", done.Text)
	require.Equal(t, 1, *e.mailCalls)

	status, failed := doRequest(t, e, "PUT", "/cancel/payment", fiber.Map{
		"unique_id": created.UniqueID,
	}, "user")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Processing Payment not found!", failed.Text)

	status, failed = doRequest(t, e, "PUT", "/cancel/payments/via/reference", fiber.Map{
		"reference": created.Reference,
	}, "user")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Processing Payment not found!", failed.Text)

	// No cancellation mail went out and the row is untouched.
	require.Equal(t, 1, *e.mailCalls)

	var payment models.Payment
	require.NoError(t, e.db.Where("unique_id = ?", created.UniqueID).First(&payment).Error)
	require.Equal(t, models.PaymentStatusCompleted, payment.PaymentStatus)
}

func TestRootCompletePaymentReferenceInQuery(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	_, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "PAYSTACK",
	}, "user")

	var created struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, done := doRequest(t, e, "PUT", "/root/complete/payments?reference="+created.Reference, fiber.Map{
		"user_unique_id": e.user.UniqueID,
	}, "root")

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payment was completed successfully!", done.Text)

	var enrollmentCount int64
	require.NoError(t, e.db.Model(&models.Enrollment{}).Count(&enrollmentCount).Error)
	require.EqualValues(t, 1, enrollmentCount)
}

func TestDeletePaymentDestroysRow(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	_, env := doRequest(t, e, "POST", "/add/payment", fiber.Map{
		"course_unique_id": course.UniqueID,
		"gateway":          "PAYSTACK",
	}, "user")

	var created struct {
		UniqueID string `json:"unique_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, done := doRequest(t, e, "DELETE", "/payment", fiber.Map{
		"unique_id": created.UniqueID,
	}, "root")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payment was deleted successfully!", done.Text)

	var count int64
	require.NoError(t, e.db.Unscoped().Model(&models.Payment{}).
		Where("unique_id = ?", created.UniqueID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestUserPaymentsPagination(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	for i := 0; i < 25; i++ {
		require.NoError(t, e.db.Create(&models.Payment{
			UniqueID:       uuid.NewString(),
			UserUniqueID:   e.user.UniqueID,
			CourseUniqueID: course.UniqueID,
			Type:           models.TransactionTypePayment,
			Gateway:        models.GatewayPaystack,
			PaymentMethod:  models.PaymentMethodCard,
			Amount:         45000,
			Reference:      utils.RandomReference(7),
			PaymentStatus:  models.PaymentStatusCompleted,
		}).Error)
	}

	status, env := doRequest(t, e, "GET", "/payments?page=3&size=10", nil, "user")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payments loaded", env.Text)

	var data struct {
		Count int64             `json:"count"`
		Rows  []json.RawMessage `json:"rows"`
		Pages int               `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.EqualValues(t, 25, data.Count)
	require.Equal(t, 3, data.Pages)
	require.Len(t, data.Rows, 5)
}

func TestUserGetPaymentsScopedToCaller(t *testing.T) {
	e := newTestEnv(t)
	course := e.addCourse(t, "Intro to Go", 45000)

	other := models.User{
		UniqueID:          uuid.NewString(),
		Firstname:         "Bisi",
		Lastname:          "Okafor",
		Email:             "bisi@example.com",
		Privates:          "hash",
		EmailVerification: true,
		Access:            models.AccessGranted,
	}
	require.NoError(t, e.db.Create(&other).Error)

	require.NoError(t, e.db.Create(&models.Payment{
		UniqueID:       uuid.NewString(),
		UserUniqueID:   other.UniqueID,
		CourseUniqueID: course.UniqueID,
		Type:           models.TransactionTypePayment,
		Gateway:        models.GatewayPaystack,
		PaymentMethod:  models.PaymentMethodCard,
		Amount:         45000,
		Reference:      utils.RandomReference(7),
		PaymentStatus:  models.PaymentStatusProcessing,
	}).Error)

	status, env := doRequest(t, e, "GET", "/payments", nil, "user")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Payments Not found", env.Text)
}
