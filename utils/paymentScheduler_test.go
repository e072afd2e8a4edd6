package utils

import (
	"testing"
	"time"

	"academy/config"
	"academy/database"
	"academy/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCancelStalePayments(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:scheduler_test?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Payment{}))
	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{StalePaymentDays: 30}

	stale := models.Payment{
		UniqueID:      uuid.NewString(),
		UserUniqueID:  uuid.NewString(),
		Type:          models.TransactionTypePayment,
		Gateway:       models.GatewayPaystack,
		PaymentMethod: models.PaymentMethodCard,
		Amount:        45000,
		PaymentStatus: models.PaymentStatusProcessing,
	}
	stale.CourseUniqueID = uuid.NewString()
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&models.Payment{}).Where("unique_id = ?", stale.UniqueID).
		Update("created_at", time.Now().AddDate(0, 0, -45)).Error)

	fresh := models.Payment{
		UniqueID:       uuid.NewString(),
		UserUniqueID:   uuid.NewString(),
		CourseUniqueID: uuid.NewString(),
		Type:           models.TransactionTypePayment,
		Gateway:        models.GatewayPaystack,
		PaymentMethod:  models.PaymentMethodCard,
		Amount:         45000,
		PaymentStatus:  models.PaymentStatusProcessing,
	}
	require.NoError(t, db.Create(&fresh).Error)

	cancelStalePayments()

	var staleAfter, freshAfter models.Payment
	require.NoError(t, db.Where("unique_id = ?", stale.UniqueID).First(&staleAfter).Error)
	require.NoError(t, db.Where("unique_id = ?", fresh.UniqueID).First(&freshAfter).Error)

	require.Equal(t, models.PaymentStatusCancelled, staleAfter.PaymentStatus)
	require.Equal(t, models.PaymentStatusProcessing, freshAfter.PaymentStatus)
}
