package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AppDefault criteria keys
const (
	CriteriaMaintenance       = "Maintenance"
	CriteriaPaystackPublicKey = "Paystack_Public_Key"
	CriteriaPaystackSecretKey = "Paystack_Secret_Key"
	CriteriaSquadPublicKey    = "Squad_Public_Key"
	CriteriaSquadSecretKey    = "Squad_Secret_Key"
	CriteriaApiWhitelist      = "Api_Whitelist"
)

// AppDefault is a persisted key/value configuration entry. Value is a JSON
// blob whose shape is declared by DataType (BOOLEAN, STRING, ARRAY, ...).
type AppDefault struct {
	gorm.Model
	UniqueID  string         `json:"unique_id" gorm:"uniqueIndex;size:40;not null"`
	Criteria  string         `json:"criteria" gorm:"uniqueIndex;size:100;not null"`
	DataType  string         `json:"data_type" gorm:"size:20;not null"`
	Value     datatypes.JSON `json:"value"`
	IsDeleted bool           `json:"-" gorm:"default:false"`
}
