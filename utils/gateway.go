package utils

import (
	"academy/config"
	"academy/database"
	"academy/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Verifier checks a transaction reference against an external payment
// gateway. Verification never mutates local state, so a failed call can be
// retried by re-invoking completion.
type Verifier interface {
	Verify(reference string) error
}

// VerifierFor returns the verification adapter for a gateway, with its secret
// key loaded from the app defaults.
func VerifierFor(gateway string) (Verifier, error) {
	secret, err := database.GatewaySecret(gateway)
	if err != nil {
		return nil, err
	}

	switch gateway {
	case models.GatewayPaystack:
		return &paystackVerifier{baseURL: config.AppConfig.PaystackVerifyURL, secret: secret}, nil
	case models.GatewaySquad:
		return &squadVerifier{baseURL: config.AppConfig.SquadVerifyURL, secret: secret}, nil
	default:
		return nil, fmt.Errorf("Invalid transaction gateway!")
	}
}

func gatewayClient() *resty.Client {
	return resty.New().SetTimeout(15 * time.Second)
}

type paystackVerifier struct {
	baseURL string
	secret  string
}

func (v *paystackVerifier) Verify(reference string) error {
	var result struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}

	resp, err := gatewayClient().R().
		SetHeader("Authorization", "Bearer "+v.secret).
		SetResult(&result).
		Get(v.baseURL + reference)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() || !result.Status {
		return errors.New("Error getting payment for validation")
	}
	if result.Data.Status != "success" {
		// The gateway's reported status goes back verbatim for operator diagnosis.
		return fmt.Errorf("Payment unsuccessful (Status - %s)", strings.ToUpper(result.Data.Status))
	}
	return nil
}

type squadVerifier struct {
	baseURL string
	secret  string
}

func (v *squadVerifier) Verify(reference string) error {
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			TransactionStatus string  `json:"transaction_status"`
			TransactionAmount float64 `json:"transaction_amount"`
		} `json:"data"`
	}

	resp, err := gatewayClient().R().
		SetHeader("Authorization", "Bearer "+v.secret).
		SetResult(&result).
		Get(v.baseURL + reference)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() || !result.Success {
		return errors.New("Error getting payment for validation")
	}
	if result.Data.TransactionStatus != "success" {
		return fmt.Errorf("Payment unsuccessful (Status - %s)", result.Data.TransactionStatus)
	}
	return nil
}
