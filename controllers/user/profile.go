package userController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the requester's account record.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile lets a user change the fields they own: full name and
// parent phone. Everything else (status, role, grade) is admin territory.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		FullName    string `json:"full_name"`
		ParentPhone string `json:"parent_phone"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if reqData.FullName != "" {
		user.FullName = reqData.FullName
	}
	if reqData.ParentPhone != "" {
		user.ParentPhone = reqData.ParentPhone
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your profile has been updated!", user)
}

// TrackPageView appends one page-view event. A zero or missing duration is
// silently dropped: the call still succeeds, nothing is stored.
func TrackPageView(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		URL      string `json:"url"`
		Duration int    `json:"duration"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Duration <= 0 || reqData.URL == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Nothing to record.", nil)
	}

	entry := models.PageViewLog{
		UserID:          userID,
		URL:             reqData.URL,
		DurationSeconds: reqData.Duration,
	}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record page view!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Page view recorded.", nil)
}
