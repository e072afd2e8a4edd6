package models

import (
	"gorm.io/gorm"
)

// Access levels for a user account
const (
	AccessGranted   = 1
	AccessSuspended = 2
	AccessRevoked   = 3
)

type User struct {
	gorm.Model
	UniqueID             string `json:"unique_id" gorm:"uniqueIndex;size:40;not null"`
	Firstname            string `json:"firstname" gorm:"not null"`
	Middlename           string `json:"middlename" gorm:"default:''"`
	Lastname             string `json:"lastname" gorm:"not null"`
	Email                string `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber          string `json:"phone_number" gorm:"default:''"`
	AltPhoneNumber       string `json:"alt_phone_number" gorm:"default:''"`
	Address              string `json:"address" gorm:"default:''"`
	Country              string `json:"country" gorm:"default:''"`
	State                string `json:"state" gorm:"default:''"`
	City                 string `json:"city" gorm:"default:''"`
	Privates             string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	ProfileImage         string `json:"profile_image" gorm:"default:''"`
	ProfileImagePublicID string `json:"profile_image_public_id" gorm:"default:''"`
	EmailVerification    bool   `json:"email_verification" gorm:"default:false"`
	Balance              int    `json:"balance" gorm:"default:0"`
	Access               int    `json:"access" gorm:"default:1"` // 1 granted, 2 suspended, 3 revoked
	IsDeleted            bool   `json:"-" gorm:"default:false"`
}

// Fullname joins first, middle and last names, skipping an empty middle name.
func (u *User) Fullname() string {
	if u.Middlename != "" {
		return u.Firstname + " " + u.Middlename + " " + u.Lastname
	}
	return u.Firstname + " " + u.Lastname
}
