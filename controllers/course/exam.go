package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// examQuestion is the taker-facing view of a question: no correct option.
type examQuestion struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
	Option4 string `json:"option4"`
}

// GetExam returns an exam's questions without the answers.
func GetExam(c *fiber.Ctx) error {
	examID := c.Locals("examID").(uint)

	var exam models.Exam
	if err := database.Database.Db.Preload("Questions").First(&exam, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	questions := make([]examQuestion, len(exam.Questions))
	for i, q := range exam.Questions {
		questions[i] = examQuestion{
			ID:      q.ID,
			Text:    q.Text,
			Option1: q.Option1,
			Option2: q.Option2,
			Option3: q.Option3,
			Option4: q.Option4,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam fetched successfully!", fiber.Map{
		"id":        exam.ID,
		"title":     exam.Title,
		"questions": questions,
	})
}

// SubmitExam grades the submitted answers against the exam's current
// question set and stores a new result row. Grading is history-preserving:
// every submission appends, nothing is overwritten.
func SubmitExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	examID := c.Locals("examID").(uint)
	answers := c.Locals("validatedAnswers").(map[uint]int)

	db := database.Database.Db

	var exam models.Exam
	if err := db.Preload("Questions").First(&exam, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	score, total := GradeExam(exam.Questions, answers)

	result := models.ExamResult{
		Score:       score,
		Total:       total,
		UserID:      userID,
		ExamID:      exam.ID,
		SubmittedAt: time.Now(),
	}
	if err := db.Create(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("You finished the exam! Your score is %d out of %d.", score, total), result)
}

// GradeExam scores an answer set against the stored questions. The total is
// the question count at grading time; an absent or out-of-range selection
// simply never counts as correct.
func GradeExam(questions []models.Question, answers map[uint]int) (score, total int) {
	total = len(questions)
	for _, q := range questions {
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectOption {
			score++
		}
	}
	return score, total
}

// courseResults groups one course's results for the response payload.
type courseResults struct {
	Course  models.Course       `json:"course"`
	Results []models.ExamResult `json:"results"`
}

// GetExamResults returns the requester's exam history grouped by the owning
// course (exam -> lesson -> course), newest submission first in each group.
func GetExamResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var results []models.ExamResult
	if err := database.Database.Db.
		Preload("Exam.Lesson.Course").
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exam results!", nil)
	}

	grouped := make([]*courseResults, 0)
	index := make(map[uint]*courseResults)
	for _, r := range results {
		if r.Exam == nil || r.Exam.Lesson == nil || r.Exam.Lesson.Course == nil {
			continue
		}
		course := *r.Exam.Lesson.Course
		group, ok := index[course.ID]
		if !ok {
			group = &courseResults{Course: course}
			index[course.ID] = group
			grouped = append(grouped, group)
		}
		group.Results = append(group.Results, r)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam results fetched successfully!", grouped)
}
