package database

import (
	"academy/models"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSettingNotFound is returned when a settings row is missing or its value is unset.
var ErrSettingNotFound = errors.New("setting not found")

func appDefault(criteria string) (*models.AppDefault, error) {
	var row models.AppDefault
	err := Database.Db.Where("criteria = ? AND is_deleted = ?", criteria, false).First(&row).Error
	if err != nil {
		return nil, ErrSettingNotFound
	}
	return &row, nil
}

// GatewaySecret returns the stored secret key for a payment gateway.
func GatewaySecret(gateway string) (string, error) {
	var criteria, label string
	switch gateway {
	case models.GatewayPaystack:
		criteria, label = models.CriteriaPaystackSecretKey, "Paystack"
	case models.GatewaySquad:
		criteria, label = models.CriteriaSquadSecretKey, "Squad"
	default:
		return "", fmt.Errorf("Invalid transaction gateway!")
	}

	row, err := appDefault(criteria)
	if err != nil {
		return "", fmt.Errorf("App Default for %s Gateway not found!", label)
	}

	var secret string
	if err := json.Unmarshal(row.Value, &secret); err != nil || secret == "" {
		return "", fmt.Errorf("App Default for %s Gateway not found!", label)
	}
	return secret, nil
}

// MaintenanceMode reports whether the maintenance flag is set. Missing or
// malformed rows read as false.
func MaintenanceMode() bool {
	row, err := appDefault(models.CriteriaMaintenance)
	if err != nil {
		return false
	}
	var on bool
	if err := json.Unmarshal(row.Value, &on); err != nil {
		return false
	}
	return on
}
