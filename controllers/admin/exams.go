package adminController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// CreateExam attaches a new exam to a lesson.
func CreateExam(c *fiber.Ctx) error {
	reqData := new(struct {
		Title    string `json:"title"`
		LessonID uint   `json:"lesson_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	if reqData.Title == "" {
		errors["title"] = "Exam title is required!"
	}
	if reqData.LessonID == 0 {
		errors["lesson_id"] = "A lesson is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	db := database.Database.Db

	if err := db.First(&models.Lesson{}, reqData.LessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	exam := models.Exam{
		Title:    reqData.Title,
		LessonID: reqData.LessonID,
	}
	if err := db.Create(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam created successfully!", exam)
}

// DeleteExam removes an exam and its questions (cascade). Past results keep
// their rows; history is never rewritten.
func DeleteExam(c *fiber.Ctx) error {
	examID := c.Locals("examID").(uint)

	db := database.Database.Db

	var exam models.Exam
	if err := db.First(&exam, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	if err := db.Unscoped().Delete(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam deleted successfully!", nil)
}

// CreateQuestion adds a four-option question to an exam.
func CreateQuestion(c *fiber.Ctx) error {
	reqData := new(struct {
		Text          string `json:"text"`
		Option1       string `json:"option1"`
		Option2       string `json:"option2"`
		Option3       string `json:"option3"`
		Option4       string `json:"option4"`
		CorrectOption int    `json:"correct_option"`
		ExamID        uint   `json:"exam_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	if reqData.Text == "" {
		errors["text"] = "Question text is required!"
	}
	if reqData.Option1 == "" || reqData.Option2 == "" || reqData.Option3 == "" || reqData.Option4 == "" {
		errors["options"] = "All four options are required!"
	}
	if reqData.CorrectOption < 1 || reqData.CorrectOption > 4 {
		errors["correct_option"] = "The correct option must be between 1 and 4!"
	}
	if reqData.ExamID == 0 {
		errors["exam_id"] = "An exam is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	db := database.Database.Db

	if err := db.First(&models.Exam{}, reqData.ExamID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	question := models.Question{
		Text:          reqData.Text,
		Option1:       reqData.Option1,
		Option2:       reqData.Option2,
		Option3:       reqData.Option3,
		Option4:       reqData.Option4,
		CorrectOption: reqData.CorrectOption,
		ExamID:        reqData.ExamID,
	}
	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// DeleteQuestion removes one question from an exam.
func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)

	db := database.Database.Db

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if err := db.Unscoped().Delete(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
