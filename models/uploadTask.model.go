package models

import (
	"time"

	"gorm.io/datatypes"
)

// Upload task states. pending and progress are transient; success and
// failure are terminal and keep the task's final detail for polling clients.
const (
	TaskPending  = "pending"
	TaskProgress = "progress"
	TaskSuccess  = "success"
	TaskFailure  = "failure"
)

// UploadTask is the durable handle for one offloaded media upload. The
// request that accepted the file returns the task ID immediately; the worker
// updates State/Detail as it goes and the client polls the status endpoint.
//
// Detail carries a small JSON payload: {"progress": n} while running,
// {"secure_url": "..."} on success, {"kind": "...", "message": "..."} on
// failure.
type UploadTask struct {
	ID        string         `json:"id" gorm:"primarykey;size:50"`
	State     string         `json:"state" gorm:"size:20;not null;default:'pending'"`
	Detail    datatypes.JSON `json:"detail"`
	TempPath  string         `json:"-" gorm:"size:300"` // staged file, removed when the task ends
	VideoID   uint           `json:"video_id" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
