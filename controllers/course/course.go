package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetHome returns the public landing payload: all teacher profiles and the
// three most recent courses.
func GetHome(c *fiber.Ctx) error {
	db := database.Database.Db

	var teachers []models.Teacher
	if err := db.Find(&teachers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teachers!", nil)
	}

	var latestCourses []models.Course
	if err := db.Preload("Teacher").Order("id desc").Limit(3).Find(&latestCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home fetched successfully!", fiber.Map{
		"teachers":       teachers,
		"latest_courses": latestCourses,
	})
}

// GetAllCourses lists courses, optionally filtered by grade.
func GetAllCourses(c *fiber.Ctx) error {
	query := database.Database.Db.Preload("Teacher").Order("id desc")

	if grade := c.Query("grade"); grade != "" {
		query = query.Where("grade = ?", grade)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetTeacherCourses lists the courses of one teacher profile.
func GetTeacherCourses(c *fiber.Ctx) error {
	teacherID := c.Locals("teacherID").(uint)

	var teacher models.Teacher
	if err := database.Database.Db.Preload("Courses").First(&teacher, teacherID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher courses fetched successfully!", fiber.Map{
		"teacher": teacher,
		"courses": teacher.Courses,
	})
}

// GetCourseDetails returns the full course content. Paid courses are only
// visible to admins, teachers and enrolled users; everyone else is steered
// to the purchase flow rather than refused outright.
func GetCourseDetails(c *fiber.Ctx) error {
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
	if err := db.Preload("Teacher").First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !CanViewCourse(&user, &course) {
		// Not an error: the client should take the user to the purchase page
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false,
			"This course is paid. Please submit a purchase request.", fiber.Map{
				"redirect": fmt.Sprintf("/course/%d/purchase", course.ID),
			})
	}

	if err := db.Preload("Videos").Preload("Lessons", func(q *gorm.DB) *gorm.DB {
		return q.Order("position asc")
	}).Preload("Lessons.Attachments").Preload("Lessons.Exams").
		First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CanViewCourse implements the content-visibility rule: staff roles always
// see course detail, everyone else needs the course to be free or to already
// be enrolled.
func CanViewCourse(user *models.User, course *models.Course) bool {
	if user.Role == models.RoleAdmin || user.Role == models.RoleTeacher {
		return true
	}
	if !course.IsPaid {
		return true
	}
	return IsEnrolled(user.ID, course.ID)
}

// IsEnrolled reports membership in a course's enrolled set.
func IsEnrolled(userID, courseID uint) bool {
	var count int64
	database.Database.Db.Table("enrollments").
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&count)
	return count > 0
}
