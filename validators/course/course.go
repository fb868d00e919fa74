package courseValidator

import (
	"elearn/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// idParam parses and validates a positive integer route parameter, storing
// it under localKey for the controller.
func idParam(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing id parameter!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}

		c.Locals(localKey, uint(id))
		return c.Next()
	}
}

func CourseID() fiber.Handler { return idParam("id", "courseID") }
func TeacherID() fiber.Handler { return idParam("id", "teacherID") }
func VideoID() fiber.Handler { return idParam("id", "videoID") }
func ExamID() fiber.Handler { return idParam("id", "examID") }

// RecordProgress validates the watch-progress payload.
func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Progress *int `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Progress == nil {
			errors["progress"] = "Progress percentage is required!"
		} else if *reqData.Progress < 0 || *reqData.Progress > 100 {
			errors["progress"] = "Progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", *reqData.Progress)
		return c.Next()
	}
}

// SubmitExam validates the answer payload: a map of question id to the
// selected option. Out-of-range options are not an error here; grading
// simply never counts them as correct.
func SubmitExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[string]int `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answers == nil {
			reqData.Answers = map[string]int{}
		}

		answers := make(map[uint]int, len(reqData.Answers))
		for key, option := range reqData.Answers {
			questionID, err := strconv.Atoi(key)
			if err != nil || questionID <= 0 {
				continue
			}
			answers[uint(questionID)] = option
		}

		c.Locals("validatedAnswers", answers)
		return c.Next()
	}
}
