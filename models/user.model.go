package models

import (
	"gorm.io/gorm"
)

// Account status values. Self-registered users start as pending until an
// admin approves them; rejection deletes the account outright.
const (
	StatusPendingApproval = "pending_approval"
	StatusActive          = "active"
)

// Account roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	FullName     string `json:"full_name" gorm:"size:150;not null"`
	Phone        string `json:"phone" gorm:"size:20;uniqueIndex;not null"` // login handle
	PasswordHash string `json:"-" gorm:"size:256;not null"`
	ParentPhone  string `json:"parent_phone" gorm:"size:20"`
	Governorate  string `json:"governorate" gorm:"size:50"`
	Grade        string `json:"grade" gorm:"size:50"`
	Branch       string `json:"branch" gorm:"size:50"`
	Status       string `json:"status" gorm:"size:20;not null;default:'pending_approval'"`
	Role         string `json:"role" gorm:"size:20;not null;default:'student'"`

	EnrolledCourses []Course `json:"enrolled_courses,omitempty" gorm:"many2many:enrollments;"`
}
