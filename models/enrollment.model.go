package models

import "gorm.io/gorm"

// Enrollment statuses
const (
	EnrollmentStatusOngoing   = "Ongoing"
	EnrollmentStatusCompleted = "Completed"
	EnrollmentStatusCertified = "Certified"
)

// Enrollment rows are created only when a payment batch reaches Completed.
type Enrollment struct {
	gorm.Model
	UniqueID         string `json:"unique_id" gorm:"uniqueIndex;size:40;not null"`
	UserUniqueID     string `json:"user_unique_id" gorm:"index;size:40;not null"`
	CourseUniqueID   string `json:"course_unique_id" gorm:"index;size:40;not null"`
	EnrollmentStatus string `json:"enrollment_status" gorm:"size:50;not null"`
	IsDeleted        bool   `json:"-" gorm:"default:false"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserUniqueID;references:UniqueID"`
	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseUniqueID;references:UniqueID"`
}
