package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse adds the user to a free course's enrolled set. The add is
// idempotent: enrolling in a course twice leaves exactly one membership and
// still reports success. Paid courses never enroll here; they go through the
// purchase workflow.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.IsPaid {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false,
			"This course is paid. Please submit a purchase request.", fiber.Map{
				"redirect": fmt.Sprintf("/course/%d/purchase", course.ID),
			})
	}

	if IsEnrolled(userID, courseID) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course.", nil)
	}

	if err := db.Model(&user).Association("EnrolledCourses").Append(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("You have successfully enrolled in the free course %q!", course.Title), nil)
}

// GetMyCourses returns the requester's enrolled courses (the dashboard view).
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Preload("EnrolledCourses.Teacher").Preload("EnrolledCourses").
		First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", user.EnrolledCourses)
}
