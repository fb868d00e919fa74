package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitPurchase accepts a payment receipt for a paid course and opens a
// pending purchase order for admin review. The receipt is a small bounded
// file, so the media-storage call stays in the request path. Several orders
// for the same (user, course) pair may coexist; each is judged on its own.
func SubmitPurchase(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsPaid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is not available for purchase!", nil)
	}

	receipt, err := c.FormFile("receipt")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"receipt": "A receipt image is required!",
		})
	}

	receiptURL, err := utils.UploadFile(receipt, "receipts")
	if err != nil {
		log.Printf("Receipt upload failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to store the receipt. Please try again.", nil)
	}

	order := models.PurchaseOrder{
		UserID:          userID,
		CourseID:        course.ID,
		ReceiptImageURL: receiptURL,
		Status:          models.OrderPending,
	}

	if err := db.Create(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit purchase request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Purchase request submitted successfully.", order)
}

// GetMyPurchaseOrders lists the requester's purchase orders, newest first.
func GetMyPurchaseOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.PurchaseOrder
	if err := database.Database.Db.Preload("Course").
		Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchase orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase orders fetched successfully!", orders)
}
