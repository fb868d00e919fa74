package adminValidator

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

func TargetUserID() fiber.Handler { return idParam("id", "targetUserID") }
func OrderID() fiber.Handler { return idParam("id", "orderID") }
func TeacherID() fiber.Handler { return idParam("id", "teacherID") }
func CourseID() fiber.Handler { return idParam("id", "courseID") }
func LessonID() fiber.Handler { return idParam("id", "lessonID") }
func AttachmentID() fiber.Handler { return idParam("id", "attachmentID") }
func ExamID() fiber.Handler { return idParam("id", "examID") }
func QuestionID() fiber.Handler { return idParam("id", "questionID") }
func VideoID() fiber.Handler { return idParam("id", "videoID") }

// LinkedUser reads the optional user_id form field used to tie a teacher
// profile to an account.
func LinkedUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.FormValue("user_id"))
		if raw == "" {
			return c.Next()
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid linked user id!", nil)
		}

		c.Locals("linkedUserID", uint(id))
		return c.Next()
	}
}
