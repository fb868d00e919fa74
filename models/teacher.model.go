package models

import "gorm.io/gorm"

// Teacher is a public profile, optionally linked to a platform account.
// The profile has its own lifecycle and may exist without any account.
type Teacher struct {
	gorm.Model
	Name                 string `json:"name" gorm:"size:150;not null"`
	Photo                string `json:"photo" gorm:"size:300"`
	SubjectsTaught       string `json:"subjects_taught" gorm:"size:500"`
	GradesTaught         string `json:"grades_taught" gorm:"size:100"`
	BranchSpecialization string `json:"branch_specialization" gorm:"size:100"`

	// At most one Teacher per account
	UserID *uint `json:"user_id" gorm:"uniqueIndex"`
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserID"`

	Courses []Course `json:"courses,omitempty" gorm:"foreignKey:TeacherID"`
}
