package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	UniqueID     string `json:"unique_id" gorm:"uniqueIndex;size:40;not null"`
	Reference    string `json:"reference" gorm:"uniqueIndex;size:20;not null"`
	Title        string `json:"title" gorm:"uniqueIndex;size:300;not null"`
	File         string `json:"file" gorm:"default:''"`
	FileType     string `json:"file_type" gorm:"default:''"`
	FilePublicID string `json:"file_public_id" gorm:"default:''"`
	Content      string `json:"content" gorm:"type:text;not null"`
	Certificate  string `json:"certificate" gorm:"default:''"`
	Amount       int    `json:"amount" gorm:"not null"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
