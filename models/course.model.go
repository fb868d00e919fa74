package models

import "gorm.io/gorm"

// Course represents a learning course owned by a teacher profile.
//
// SubjectName is intentionally denormalized display text rather than a
// foreign key into subjects: the admin surface offers the subject list as
// choices, but a course keeps its label even if the subject row is renamed
// or removed later.
type Course struct {
	gorm.Model
	Title       string  `json:"title" gorm:"size:150;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Thumbnail   string  `json:"thumbnail" gorm:"size:300"`
	IsPaid      bool    `json:"is_paid" gorm:"default:false"`
	Price       float64 `json:"price"` // ignored when IsPaid is false
	Grade       string  `json:"grade" gorm:"size:50;not null"`
	SubjectName string  `json:"subject_name" gorm:"size:100;not null"`

	TeacherID uint     `json:"teacher_id" gorm:"index;not null"`
	Teacher   *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`

	Videos  []Video  `json:"videos,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	Lessons []Lesson `json:"lessons,omitempty" gorm:"constraint:OnDelete:CASCADE;"`

	EnrolledUsers []User `json:"-" gorm:"many2many:enrollments;"`
}
