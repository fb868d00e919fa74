package authController

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	authValidator "elearn/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new student account in pending_approval state. The
// account cannot log in until an admin activates it.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if phone already exists
	if err := db.Where("phone = ?", reqData.Phone).First(&models.User{}).Error; err == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"phone": "Phone number is already registered!",
		})
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FullName:     reqData.FullName,
		Phone:        reqData.Phone,
		PasswordHash: string(hashedPassword),
		ParentPhone:  reqData.ParentPhone,
		Governorate:  reqData.Governorate,
		Grade:        reqData.Grade,
		Branch:       reqData.Branch,
		Status:       models.StatusPendingApproval,
		Role:         models.RoleStudent,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true,
		"Your account has been created! It will be activated by the administration soon.", newUser)
}

// Login authenticates by phone and password. Only active accounts get a
// token; pending accounts are told their review is still in progress.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("phone = ?", reqData.Phone).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect phone number or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect phone number or password!", nil)
	}

	if user.Status != models.StatusActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account is awaiting review and activation.", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Phone)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
