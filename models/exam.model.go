package models

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	gorm.Model
	Title string `json:"title" gorm:"size:200;not null"`

	LessonID uint    `json:"lesson_id" gorm:"index;not null"`
	Lesson   *Lesson `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`

	Questions []Question `json:"questions,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

// Question has four fixed text options; CorrectOption is the 1-based index
// of the right one.
type Question struct {
	gorm.Model
	Text          string `json:"text" gorm:"type:text;not null"`
	Option1       string `json:"option1" gorm:"size:200;not null"`
	Option2       string `json:"option2" gorm:"size:200;not null"`
	Option3       string `json:"option3" gorm:"size:200;not null"`
	Option4       string `json:"option4" gorm:"size:200;not null"`
	CorrectOption int    `json:"correct_option" gorm:"not null"` // 1-4

	ExamID uint `json:"exam_id" gorm:"index;not null"`
}

// ExamResult records one grading event. Re-submitting an exam appends a new
// row; history accumulates, nothing is overwritten.
type ExamResult struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Score       int       `json:"score" gorm:"not null"`
	Total       int       `json:"total" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"not null"`

	UserID uint  `json:"user_id" gorm:"index;not null"`
	ExamID uint  `json:"exam_id" gorm:"index;not null"`
	Exam   *Exam `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
}
