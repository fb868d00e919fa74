package models

import (
	"time"

	"gorm.io/gorm"
)

// Video location types
const (
	VideoTypeLocal   = "local"   // hosted on media storage, VideoURL set
	VideoTypeYoutube = "youtube" // external platform, YoutubeVideoID set
)

type Video struct {
	gorm.Model
	Title          string `json:"title" gorm:"size:200;not null"`
	VideoType      string `json:"video_type" gorm:"size:20;not null;default:'local'"`
	VideoURL       string `json:"video_url" gorm:"size:300"`
	YoutubeVideoID string `json:"youtube_video_id" gorm:"size:50"`

	// Last async upload task for this video, for status correlation
	UploadTaskID string `json:"upload_task_id" gorm:"size:50"`

	CourseID uint    `json:"course_id" gorm:"index;not null"`
	Course   *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// VideoWatch tracks how far a user has gotten through a video. Exactly one
// row per (user, video) pair; writes go through an atomic upsert so two
// concurrent sessions can never both take the insert path.
type VideoWatch struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_video"`
	VideoID     uint      `json:"video_id" gorm:"not null;uniqueIndex:idx_user_video"`
	WatchCount  int       `json:"watch_count" gorm:"default:0"`
	MaxProgress int       `json:"max_progress" gorm:"default:0"` // percentage, non-decreasing
	LastWatched time.Time `json:"last_watched" gorm:"not null"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Video *Video `json:"video,omitempty" gorm:"foreignKey:VideoID"`
}
