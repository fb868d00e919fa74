package utils

import (
	"elearn/config"
	"elearn/database"
	"elearn/models"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
)

// uploadJobs feeds the worker goroutine. The buffer keeps the accepting
// request from blocking under a short burst of admin uploads.
var uploadJobs = make(chan string, 16)

// logWorker logs upload-worker events with timestamp
func logWorker(message string) {
	log.Printf("[UPLOAD-WORKER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartUploadWorker launches the background upload goroutine and the
// housekeeping cron. Call once from main after the database is connected.
func StartUploadWorker() {
	go func() {
		for taskID := range uploadJobs {
			runUploadTask(taskID)
		}
	}()

	c := cron.New()
	// Every 15 minutes: fail stuck tasks and sweep orphaned staged files
	c.AddFunc("*/15 * * * *", ExpireStaleTasks)
	c.Start()

	logWorker("Upload worker started.")
}

// EnqueueUpload registers a staged video file for background upload and
// returns the task id the client polls. The task row is the durable handle;
// the channel send just wakes the worker.
func EnqueueUpload(tempPath string, videoID uint) (string, error) {
	task := models.UploadTask{
		ID:       uuid.NewString(),
		State:    models.TaskPending,
		TempPath: tempPath,
		VideoID:  videoID,
	}
	if err := database.Database.Db.Create(&task).Error; err != nil {
		return "", err
	}

	uploadJobs <- task.ID
	return task.ID, nil
}

// runUploadTask drives one task to a terminal state. The staged file is
// removed whether the upload succeeds or fails; a failed upload requires a
// fresh submission, there is no automatic retry.
func runUploadTask(taskID string) {
	db := database.Database.Db

	var task models.UploadTask
	if err := db.First(&task, "id = ?", taskID).Error; err != nil {
		logWorker("Task " + taskID + " not found: " + err.Error())
		return
	}
	if task.State != models.TaskPending {
		return
	}

	setTaskState(&task, models.TaskProgress, map[string]interface{}{"progress": 10})

	secureURL, err := UploadLargeFile(task.TempPath, "video", "videos")

	RemoveIfExists(task.TempPath)

	if err != nil {
		logWorker("Task " + taskID + " failed: " + err.Error())
		setTaskState(&task, models.TaskFailure, map[string]interface{}{
			"kind":    "upload_error",
			"message": err.Error(),
		})
		return
	}

	setTaskState(&task, models.TaskSuccess, map[string]interface{}{
		"progress":   100,
		"secure_url": secureURL,
	})

	// Point the correlated video at its final location
	if task.VideoID > 0 {
		if err := db.Model(&models.Video{}).Where("id = ?", task.VideoID).
			Updates(map[string]interface{}{
				"video_url":  secureURL,
				"video_type": models.VideoTypeLocal,
			}).Error; err != nil {
			logWorker("Task " + taskID + ": failed to update video: " + err.Error())
		}
	}

	logWorker("Task " + taskID + " completed.")
}

// ExpireStaleTasks marks tasks stuck in a non-terminal state past the
// configured deadline as failed and cleans up their staged files. It also
// sweeps staged files no live task references anymore.
func ExpireStaleTasks() {
	db := database.Database.Db
	deadline := time.Now().Add(-time.Duration(config.AppConfig.UploadTaskTimeoutMin) * time.Minute)

	var stale []models.UploadTask
	if err := db.Where("state IN ? AND updated_at < ?",
		[]string{models.TaskPending, models.TaskProgress}, deadline).Find(&stale).Error; err != nil {
		logWorker("Error fetching stale tasks: " + err.Error())
		return
	}

	for i := range stale {
		RemoveIfExists(stale[i].TempPath)
		setTaskState(&stale[i], models.TaskFailure, map[string]interface{}{
			"kind":    "timeout",
			"message": "upload did not finish within the deadline",
		})
		logWorker("Task " + stale[i].ID + " expired.")
	}

	sweepOrphanedFiles(deadline)
}

// sweepOrphanedFiles removes old files in the staging directory that no
// pending or running task points at.
func sweepOrphanedFiles(olderThan time.Time) {
	dir := config.AppConfig.TempUploadDir
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var livePaths []string
	database.Database.Db.Model(&models.UploadTask{}).
		Where("state IN ?", []string{models.TaskPending, models.TaskProgress}).
		Pluck("temp_path", &livePaths)

	live := make(map[string]bool, len(livePaths))
	for _, p := range livePaths {
		live[filepath.Clean(p)] = true
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil || info.ModTime().After(olderThan) {
			continue
		}
		if !live[filepath.Clean(path)] {
			os.Remove(path)
			logWorker("Removed orphaned staged file " + path)
		}
	}
}

func setTaskState(task *models.UploadTask, state string, detail map[string]interface{}) {
	payload, _ := json.Marshal(detail)
	task.State = state
	task.Detail = datatypes.JSON(payload)
	if err := database.Database.Db.Save(task).Error; err != nil {
		logWorker("Failed to persist task state: " + err.Error())
	}
}
