package adminController

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetVideos lists all videos with their courses.
func GetVideos(c *fiber.Ctx) error {
	var videos []models.Video
	if err := database.Database.Db.Preload("Course").Order("id desc").Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", videos)
}

// UploadVideo accepts a video file, stages it locally and offloads the
// media-storage upload to the background worker. The caller gets the task id
// back immediately and polls GetUploadStatus instead of waiting in-line.
func UploadVideo(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.FormValue("course_id"))
	if err != nil || courseID <= 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"course_id": "A valid course is required!",
		})
	}

	title := c.FormValue("title")
	if title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"title": "Video title is required!",
		})
	}

	db := database.Database.Db

	if err := db.First(&models.Course{}, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	file, err := c.FormFile("video")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"video": "A video file is required!",
		})
	}

	tempPath, err := utils.SaveUploadedFile(file, config.AppConfig.TempUploadDir)
	if err != nil {
		log.Printf("Failed to stage video upload: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept the video file!", nil)
	}

	video := models.Video{
		Title:     title,
		VideoType: models.VideoTypeLocal,
		CourseID:  uint(courseID),
	}
	if err := db.Create(&video).Error; err != nil {
		utils.RemoveIfExists(tempPath)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create video record!", nil)
	}

	taskID, err := utils.EnqueueUpload(tempPath, video.ID)
	if err != nil {
		// Roll back the record too; an unqueued video with no URL is dead weight
		db.Unscoped().Delete(&video)
		utils.RemoveIfExists(tempPath)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to queue the upload!", nil)
	}

	db.Model(&video).Update("upload_task_id", taskID)

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Upload accepted. Poll the status endpoint for progress.", fiber.Map{
		"task_id": taskID,
		"video":   video,
	})
}

// GetUploadStatus reports the state and detail of one upload task.
func GetUploadStatus(c *fiber.Ctx) error {
	taskID := c.Params("taskId")
	if taskID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task id is required!", nil)
	}

	var task models.UploadTask
	if err := database.Database.Db.First(&task, "id = ?", taskID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Upload task not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upload task fetched successfully!", task)
}

// UpdateVideo edits a video's title or switches it to an externally hosted
// id. Location fields for the local path are owned by the upload worker.
func UpdateVideo(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)

	reqData := new(struct {
		Title          string `json:"title"`
		VideoType      string `json:"video_type"`
		YoutubeVideoID string `json:"youtube_video_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var video models.Video
	if err := db.First(&video, videoID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if reqData.Title != "" {
		video.Title = reqData.Title
	}
	if reqData.VideoType == models.VideoTypeYoutube && reqData.YoutubeVideoID != "" {
		video.VideoType = models.VideoTypeYoutube
		video.YoutubeVideoID = reqData.YoutubeVideoID
	}

	if err := db.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

// DeleteVideo removes a video record.
func DeleteVideo(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)

	db := database.Database.Db

	var video models.Video
	if err := db.First(&video, videoID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if err := db.Unscoped().Delete(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}

// GetVideoStats returns a video's watch log, most recent viewers first.
func GetVideoStats(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(uint)

	db := database.Database.Db

	var video models.Video
	if err := db.First(&video, videoID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	var watches []models.VideoWatch
	if err := db.Preload("User").Where("video_id = ?", videoID).
		Order("last_watched desc").Find(&watches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch watch logs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video stats fetched successfully!", fiber.Map{
		"video":   video,
		"watches": watches,
	})
}

// GetPageViews lists the raw page-view log for the analytics screen.
func GetPageViews(c *fiber.Ctx) error {
	query := database.Database.Db.Preload("User").Order("created_at desc")

	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var views []models.PageViewLog
	if err := query.Limit(500).Find(&views).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch page views!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Page views fetched successfully!", views)
}
