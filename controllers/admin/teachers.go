package adminController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetTeachers lists all teacher profiles.
func GetTeachers(c *fiber.Ctx) error {
	var teachers []models.Teacher
	if err := database.Database.Db.Preload("User").Find(&teachers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teachers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teachers fetched successfully!", teachers)
}

// CreateTeacher creates a teacher profile. The photo, when provided as
// multipart, goes straight to media storage and only its URL is kept.
func CreateTeacher(c *fiber.Ctx) error {
	teacher := models.Teacher{
		Name:                 c.FormValue("name"),
		SubjectsTaught:       c.FormValue("subjects_taught"),
		GradesTaught:         c.FormValue("grades_taught"),
		BranchSpecialization: c.FormValue("branch_specialization"),
	}

	if teacher.Name == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"name": "Teacher name is required!",
		})
	}

	if userID, ok := c.Locals("linkedUserID").(uint); ok && userID > 0 {
		teacher.UserID = &userID
	}

	if photo, err := c.FormFile("photo"); err == nil {
		url, err := utils.UploadFile(photo, "teachers")
		if err != nil {
			log.Printf("Teacher photo upload failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to store the photo. Please try again.", nil)
		}
		teacher.Photo = url
	}

	if err := database.Database.Db.Create(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create teacher!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Teacher created successfully!", teacher)
}

// UpdateTeacher edits a teacher profile, replacing the photo when a new one
// is uploaded.
func UpdateTeacher(c *fiber.Ctx) error {
	teacherID := c.Locals("teacherID").(uint)

	db := database.Database.Db

	var teacher models.Teacher
	if err := db.First(&teacher, teacherID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	if v := c.FormValue("name"); v != "" {
		teacher.Name = v
	}
	if v := c.FormValue("subjects_taught"); v != "" {
		teacher.SubjectsTaught = v
	}
	if v := c.FormValue("grades_taught"); v != "" {
		teacher.GradesTaught = v
	}
	if v := c.FormValue("branch_specialization"); v != "" {
		teacher.BranchSpecialization = v
	}
	if userID, ok := c.Locals("linkedUserID").(uint); ok && userID > 0 {
		teacher.UserID = &userID
	}

	if photo, err := c.FormFile("photo"); err == nil {
		url, err := utils.UploadFile(photo, "teachers")
		if err != nil {
			log.Printf("Teacher photo upload failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to store the photo. Please try again.", nil)
		}
		teacher.Photo = url
	}

	if err := db.Save(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update teacher!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher updated successfully!", teacher)
}

// DeleteTeacher removes a teacher profile.
func DeleteTeacher(c *fiber.Ctx) error {
	teacherID := c.Locals("teacherID").(uint)

	db := database.Database.Db

	var teacher models.Teacher
	if err := db.First(&teacher, teacherID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	if err := db.Unscoped().Delete(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete teacher!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher deleted successfully!", nil)
}
