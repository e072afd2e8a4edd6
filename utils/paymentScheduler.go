package utils

import (
	"academy/config"
	"academy/database"
	"academy/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartPaymentScheduler runs a daily job that cancels processing payments
// older than the configured window. Keeps abandoned checkouts from blocking
// the one-processing-payment-per-course rule forever.
func StartPaymentScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 1 * * *", cancelStalePayments)
	if err != nil {
		log.Printf("Error scheduling stale payment job: %v", err)
		return c
	}

	c.Start()
	log.Println("Payment scheduler started.")
	return c
}

func cancelStalePayments() {
	days := config.AppConfig.StalePaymentDays
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	res := database.Database.Db.Model(&models.Payment{}).
		Where("payment_status = ? AND type = ? AND is_deleted = ? AND created_at < ?",
			models.PaymentStatusProcessing, models.TransactionTypePayment, false, cutoff).
		Update("payment_status", models.PaymentStatusCancelled)

	if res.Error != nil {
		log.Printf("Error cancelling stale payments: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Cancelled %d stale processing payments.", res.RowsAffected)
	}
}
