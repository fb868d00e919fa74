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

// GetSubjects returns the subject list used to populate course choices.
func GetSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := database.Database.Db.Order("name asc").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

// CreateCourse creates a course under a teacher profile. The thumbnail, when
// provided, is pushed to media storage and only its URL is stored.
func CreateCourse(c *fiber.Ctx) error {
	teacherID, err := strconv.Atoi(c.FormValue("teacher_id"))
	if err != nil || teacherID <= 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"teacher_id": "A valid teacher is required!",
		})
	}

	errors := make(map[string]string)
	title := c.FormValue("title")
	grade := c.FormValue("grade")
	subjectName := c.FormValue("subject_name")
	if title == "" {
		errors["title"] = "Course title is required!"
	}
	if grade == "" {
		errors["grade"] = "Grade is required!"
	}
	if subjectName == "" {
		errors["subject_name"] = "Subject is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	db := database.Database.Db

	var teacher models.Teacher
	if err := db.First(&teacher, teacherID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	isPaid := c.FormValue("is_paid") == "true"
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	if !isPaid {
		// Price is meaningless for free courses
		price = 0
	}

	course := models.Course{
		Title:       title,
		Description: c.FormValue("description"),
		Grade:       grade,
		SubjectName: subjectName,
		IsPaid:      isPaid,
		Price:       price,
		TeacherID:   teacher.ID,
	}

	if thumb, err := c.FormFile("thumbnail"); err == nil {
		url, err := utils.UploadFile(thumb, "courses")
		if err != nil {
			log.Printf("Thumbnail upload failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to store the thumbnail. Please try again.", nil)
		}
		course.Thumbnail = url
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse edits an existing course.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Update only provided fields
	if v := c.FormValue("title"); v != "" {
		course.Title = v
	}
	if v := c.FormValue("description"); v != "" {
		course.Description = v
	}
	if v := c.FormValue("grade"); v != "" {
		course.Grade = v
	}
	if v := c.FormValue("subject_name"); v != "" {
		course.SubjectName = v
	}
	if v := c.FormValue("is_paid"); v != "" {
		course.IsPaid = v == "true"
		if !course.IsPaid {
			course.Price = 0
		}
	}
	if v := c.FormValue("price"); v != "" && course.IsPaid {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			course.Price = price
		}
	}
	if v := c.FormValue("teacher_id"); v != "" {
		if teacherID, err := strconv.Atoi(v); err == nil && teacherID > 0 {
			course.TeacherID = uint(teacherID)
		}
	}

	if thumb, err := c.FormFile("thumbnail"); err == nil {
		url, err := utils.UploadFile(thumb, "courses")
		if err != nil {
			log.Printf("Thumbnail upload failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to store the thumbnail. Please try again.", nil)
		}
		course.Thumbnail = url
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and everything hanging off it (videos,
// lessons, attachments, exams) via the cascade constraints.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Unscoped().Delete(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
