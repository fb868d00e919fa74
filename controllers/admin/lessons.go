package adminController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson adds an ordered lesson to a course.
func CreateLesson(c *fiber.Ctx) error {
	reqData := new(struct {
		Title    string `json:"title"`
		Position int    `json:"position"`
		CourseID uint   `json:"course_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	if reqData.Title == "" {
		errors["title"] = "Lesson title is required!"
	}
	if reqData.CourseID == 0 {
		errors["course_id"] = "A course is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	db := database.Database.Db

	if err := db.First(&models.Course{}, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lesson := models.Lesson{
		Title:    reqData.Title,
		Position: reqData.Position,
		CourseID: reqData.CourseID,
	}
	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson edits a lesson's title or position.
func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	reqData := new(struct {
		Title    string `json:"title"`
		Position *int   `json:"position"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.Position != nil {
		lesson.Position = *reqData.Position
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes a lesson and its attachments and exams (cascade).
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Unscoped().Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// CreateAttachment stores a lesson file (PDF or image) on media storage with
// resource type raw and keeps the returned URL.
func CreateAttachment(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.FormValue("lesson_id"))
	if err != nil || lessonID <= 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"lesson_id": "A valid lesson is required!",
		})
	}

	title := c.FormValue("title")
	if title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"title": "Attachment title is required!",
		})
	}

	db := database.Database.Db

	if err := db.First(&models.Lesson{}, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"file": "A file is required!",
		})
	}

	fileURL, err := utils.UploadRawFile(file, "attachments")
	if err != nil {
		log.Printf("Attachment upload failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to store the file. Please try again.", nil)
	}

	attachment := models.Attachment{
		Title:    title,
		FileURL:  fileURL,
		LessonID: uint(lessonID),
	}
	if err := db.Create(&attachment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create attachment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attachment created successfully!", attachment)
}

// DeleteAttachment removes an attachment record. The stored file stays on
// media storage; only the reference is dropped.
func DeleteAttachment(c *fiber.Ctx) error {
	attachmentID := c.Locals("attachmentID").(uint)

	db := database.Database.Db

	var attachment models.Attachment
	if err := db.First(&attachment, attachmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attachment not found!", nil)
	}

	if err := db.Unscoped().Delete(&attachment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete attachment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attachment deleted successfully!", nil)
}
