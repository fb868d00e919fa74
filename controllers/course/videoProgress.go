package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordProgress upserts the watch record for (user, video). Every call
// counts one playback session; max_progress only ever moves forward.
func RecordProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	videoID := c.Locals("videoID").(uint)
	progress := c.Locals("validatedProgress").(int)

	db := database.Database.Db

	var video models.Video
	if err := db.First(&video, videoID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if err := UpsertWatch(db, userID, videoID, progress); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record watch progress!", nil)
	}

	var watch models.VideoWatch
	if err := db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&watch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record watch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Watch progress recorded!", watch)
}

// UpsertWatch bumps the watch record for the unique (user_id, video_id)
// pair. The update happens first and is atomic in a single statement; if no
// row exists yet we insert, and a concurrent insert losing the race on the
// unique index falls back to the update path. Either way exactly one row
// exists afterwards.
func UpsertWatch(db *gorm.DB, userID, videoID uint, progress int) error {
	bump := func() (int64, error) {
		res := db.Model(&models.VideoWatch{}).
			Where("user_id = ? AND video_id = ?", userID, videoID).
			Updates(map[string]interface{}{
				"watch_count": gorm.Expr("watch_count + 1"),
				"max_progress": gorm.Expr(
					"CASE WHEN max_progress > ? THEN max_progress ELSE ? END", progress, progress),
				"last_watched": time.Now(),
			})
		return res.RowsAffected, res.Error
	}

	affected, err := bump()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	watch := models.VideoWatch{
		UserID:      userID,
		VideoID:     videoID,
		WatchCount:  1,
		MaxProgress: progress,
		LastWatched: time.Now(),
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(&watch).Error
	if err != nil {
		return err
	}

	// Lost the insert race to a concurrent session: count it as an update
	if watch.ID == 0 {
		_, err = bump()
	}
	return err
}
