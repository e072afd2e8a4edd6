package models

import "gorm.io/gorm"

// Payment lifecycle statuses
const (
	PaymentStatusProcessing = "Processing"
	PaymentStatusCompleted  = "Completed"
	PaymentStatusCancelled  = "Cancelled"
	PaymentStatusRefunded   = "Refunded"
)

// Payment gateways
const (
	GatewayPaystack = "PAYSTACK"
	GatewaySquad    = "SQUAD"
	GatewayInternal = "INTERNAL"
)

// Payment methods
const (
	PaymentMethodCard     = "Credit/Debit Card"
	PaymentMethodWallet   = "Wallet"
	PaymentMethodTransfer = "Transfer"
)

// Transaction types
const (
	TransactionTypePayment = "Payment"
	TransactionTypeRefund  = "Refund"
)

// ValidGateway reports whether the (already uppercased) gateway is known.
func ValidGateway(gateway string) bool {
	switch gateway {
	case GatewayPaystack, GatewaySquad, GatewayInternal:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether the payment method is known.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodWallet, PaymentMethodTransfer:
		return true
	}
	return false
}

type Payment struct {
	gorm.Model
	UniqueID       string `json:"unique_id" gorm:"uniqueIndex;size:40;not null"`
	UserUniqueID   string `json:"user_unique_id" gorm:"index;size:40;not null"`
	CourseUniqueID string `json:"course_unique_id" gorm:"index;size:40;not null"`
	Type           string `json:"type" gorm:"size:50;not null"`
	Gateway        string `json:"gateway" gorm:"size:50;not null"`
	PaymentMethod  string `json:"payment_method" gorm:"size:50;not null"`
	Amount         int    `json:"amount" gorm:"not null"`
	Reference      string `json:"reference" gorm:"index;size:200"`
	PaymentStatus  string `json:"payment_status" gorm:"size:50;not null"`
	Details        string `json:"details" gorm:"size:500"`
	IsDeleted      bool   `json:"-" gorm:"default:false"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserUniqueID;references:UniqueID"`
	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseUniqueID;references:UniqueID"`
}
