package adminController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPurchaseOrders lists purchase orders for review, newest first,
// optionally filtered by status.
func GetPurchaseOrders(c *fiber.Ctx) error {
	query := database.Database.Db.Preload("User").Preload("Course").Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.PurchaseOrder
	if err := query.Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchase orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase orders fetched successfully!", orders)
}

// ApprovePurchaseOrder moves a pending order to approved and enrolls the
// buyer, both inside one transaction so a crash can never leave an approved
// order without the enrollment or the other way around. Terminal orders
// (approved or rejected) are left untouched and the call reports a no-op.
func ApprovePurchaseOrder(c *fiber.Ctx) error {
	orderID := c.Locals("orderID").(uint)

	var order models.PurchaseOrder
	var changed bool

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").Preload("Course").First(&order, orderID).Error; err != nil {
			return err
		}

		// Only pending orders transition
		if order.Status != models.OrderPending {
			return nil
		}

		if err := tx.Model(&models.User{Model: gorm.Model{ID: order.UserID}}).
			Association("EnrolledCourses").Append(&models.Course{Model: gorm.Model{ID: order.CourseID}}); err != nil {
			return err
		}

		if err := tx.Model(&order).Update("status", models.OrderApproved).Error; err != nil {
			return err
		}

		changed = true
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase order not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve purchase order!", nil)
	}

	if !changed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Order is not pending; nothing to do.", order)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Order approved. %s is now enrolled in %q.", order.User.FullName, order.Course.Title), order)
}

// RejectPurchaseOrder moves a pending order to rejected. No enrollment side
// effect; terminal orders are left untouched. The guard and the update share
// a transaction so a concurrent approve can never be flipped to rejected
// after it committed.
func RejectPurchaseOrder(c *fiber.Ctx) error {
	orderID := c.Locals("orderID").(uint)

	var order models.PurchaseOrder
	var changed bool

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&order, orderID).Error; err != nil {
			return err
		}

		// Only pending orders transition
		if order.Status != models.OrderPending {
			return nil
		}

		if err := tx.Model(&order).Update("status", models.OrderRejected).Error; err != nil {
			return err
		}

		changed = true
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase order not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject purchase order!", nil)
	}

	if !changed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Order is not pending; nothing to do.", order)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Order from %s has been rejected.", order.User.FullName), order)
}
