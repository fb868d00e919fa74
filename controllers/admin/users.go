package adminController

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetDashboard returns the back-office landing counts.
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var studentCount, teacherCount, courseCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&studentCount)
	db.Model(&models.Teacher{}).Count(&teacherCount)
	db.Model(&models.Course{}).Count(&courseCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"student_count": studentCount,
		"teacher_count": teacherCount,
		"course_count":  courseCount,
	})
}

// GetUsers lists accounts, optionally filtered by status or role.
func GetUsers(c *fiber.Ctx) error {
	query := database.Database.Db.Order("id desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// ApproveUser activates a pending account.
func ApproveUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.Status == models.StatusActive {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Account is already active.", user)
	}

	if err := db.Model(&user).Update("status", models.StatusActive).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Account of %s has been activated.", user.FullName), user)
}

// RejectUser deletes a registration that was not accepted. Rejection is a
// hard delete: the account never existed as far as the platform is concerned.
func RejectUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Unscoped().Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Account of %s has been rejected and removed.", user.FullName), nil)
}

// UpdateUser edits an account from the back office. The password is only
// changed when a new one is supplied.
func UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(uint)

	reqData := new(struct {
		FullName    string `json:"full_name"`
		Phone       string `json:"phone"`
		ParentPhone string `json:"parent_phone"`
		Governorate string `json:"governorate"`
		Grade       string `json:"grade"`
		Branch      string `json:"branch"`
		Status      string `json:"status"`
		Role        string `json:"role"`
		Password    string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Update only provided fields
	if reqData.FullName != "" {
		user.FullName = reqData.FullName
	}
	if reqData.Phone != "" {
		user.Phone = reqData.Phone
	}
	if reqData.ParentPhone != "" {
		user.ParentPhone = reqData.ParentPhone
	}
	if reqData.Governorate != "" {
		user.Governorate = reqData.Governorate
	}
	if reqData.Grade != "" {
		user.Grade = reqData.Grade
	}
	if reqData.Branch != "" {
		user.Branch = reqData.Branch
	}
	if reqData.Status != "" {
		user.Status = reqData.Status
	}
	if reqData.Role != "" {
		user.Role = reqData.Role
	}
	if reqData.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		user.PasswordHash = string(hashed)
	}

	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}
