package models

import "time"

// PageViewLog is an append-only record of how long a user stayed on a page.
// Rows are never updated or deleted; the admin analytics view reads them as-is.
type PageViewLog struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	URL             string    `json:"url" gorm:"size:255;not null"`
	DurationSeconds int       `json:"duration_seconds" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`

	UserID uint  `json:"user_id" gorm:"index;not null"`
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
