package adminController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"elearn/config"
	"elearn/database"
	"elearn/models"
	adminValidator "elearn/validators/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createPendingOrder(t *testing.T, db *gorm.DB) models.PurchaseOrder {
	t.Helper()

	user := models.User{
		FullName: "Buyer Student Account", Phone: "01012345678",
		PasswordHash: "x", Status: models.StatusActive, Role: models.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)

	teacher := models.Teacher{Name: "Test Teacher"}
	require.NoError(t, db.Create(&teacher).Error)

	course := models.Course{
		Title: "Paid Course", IsPaid: true, Price: 200,
		Grade: "3rd Secondary", SubjectName: "Physics", TeacherID: teacher.ID,
	}
	require.NoError(t, db.Create(&course).Error)

	order := models.PurchaseOrder{
		ReceiptImageURL: "https://media.example/receipts/r1.jpg",
		Status:          models.OrderPending,
		UserID:          user.ID,
		CourseID:        course.ID,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func enrollmentCount(t *testing.T, db *gorm.DB, userID, courseID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table("enrollments").
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&count).Error)
	return count
}

func ordersApp() *fiber.App {
	app := fiber.New()
	app.Post("/admin/orders/:id/approve", adminValidator.OrderID(), ApprovePurchaseOrder)
	app.Post("/admin/orders/:id/reject", adminValidator.OrderID(), RejectPurchaseOrder)
	return app
}

func TestApprovePurchaseOrderEnrollsBuyer(t *testing.T) {
	db := setupTestDB(t)
	order := createPendingOrder(t, db)
	app := ordersApp()

	code, env := doJSON(t, app, "POST", fmt.Sprintf("/admin/orders/%d/approve", order.ID), nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Status)

	var updated models.PurchaseOrder
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderApproved, updated.Status)
	assert.Equal(t, int64(1), enrollmentCount(t, db, order.UserID, order.CourseID))
}

func TestApprovePurchaseOrderIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	order := createPendingOrder(t, db)
	app := ordersApp()

	target := fmt.Sprintf("/admin/orders/%d/approve", order.ID)

	code, _ := doJSON(t, app, "POST", target, nil)
	require.Equal(t, fiber.StatusOK, code)

	code, env := doJSON(t, app, "POST", target, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Order is not pending; nothing to do.", env.Message)

	assert.Equal(t, int64(1), enrollmentCount(t, db, order.UserID, order.CourseID))
}

func TestRejectPurchaseOrderDoesNotEnroll(t *testing.T) {
	db := setupTestDB(t)
	order := createPendingOrder(t, db)
	app := ordersApp()

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/admin/orders/%d/reject", order.ID), nil)
	require.Equal(t, fiber.StatusOK, code)

	var updated models.PurchaseOrder
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderRejected, updated.Status)
	assert.Equal(t, int64(0), enrollmentCount(t, db, order.UserID, order.CourseID))

	// A rejected order is terminal: approving it afterwards is a no-op
	code, env := doJSON(t, app, "POST", fmt.Sprintf("/admin/orders/%d/approve", order.ID), nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Order is not pending; nothing to do.", env.Message)

	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderRejected, updated.Status)
	assert.Equal(t, int64(0), enrollmentCount(t, db, order.UserID, order.CourseID))
}

func TestRejectApprovedOrderIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	order := createPendingOrder(t, db)
	app := ordersApp()

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/admin/orders/%d/approve", order.ID), nil)
	require.Equal(t, fiber.StatusOK, code)

	// An approved order is terminal: rejecting it must not undo the approval
	code, env := doJSON(t, app, "POST", fmt.Sprintf("/admin/orders/%d/reject", order.ID), nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Order is not pending; nothing to do.", env.Message)

	var updated models.PurchaseOrder
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderApproved, updated.Status)
	assert.Equal(t, int64(1), enrollmentCount(t, db, order.UserID, order.CourseID))
}

func TestApprovePurchaseOrderNotFound(t *testing.T) {
	setupTestDB(t)
	app := ordersApp()

	code, _ := doJSON(t, app, "POST", "/admin/orders/9999/approve", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}
