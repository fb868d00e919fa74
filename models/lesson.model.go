package models

import "gorm.io/gorm"

// Lesson is an ordered unit within a course. Attachments and exams hang off
// the lesson and are removed with it.
type Lesson struct {
	gorm.Model
	Title    string `json:"title" gorm:"size:200;not null"`
	Position int    `json:"position" gorm:"default:0"` // display order within the course

	CourseID uint    `json:"course_id" gorm:"index;not null"`
	Course   *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`

	Attachments []Attachment `json:"attachments,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	Exams       []Exam       `json:"exams,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

// Attachment is a stored-file reference (PDF, image) belonging to a lesson.
type Attachment struct {
	gorm.Model
	Title   string `json:"title" gorm:"size:200;not null"`
	FileURL string `json:"file_url" gorm:"size:300;not null"`

	LessonID uint `json:"lesson_id" gorm:"index;not null"`
}
