package adminController

import (
	"fmt"
	"testing"

	"elearn/models"
	adminValidator "elearn/validators/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPendingStudent(t *testing.T, db *gorm.DB, phone string) models.User {
	t.Helper()
	user := models.User{
		FullName: "Pending Student Account", Phone: phone, PasswordHash: "x",
		Status: models.StatusPendingApproval, Role: models.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func usersApp() *fiber.App {
	app := fiber.New()
	app.Post("/admin/users/:id/approve", adminValidator.TargetUserID(), ApproveUser)
	app.Post("/admin/users/:id/reject", adminValidator.TargetUserID(), RejectUser)
	app.Put("/admin/users/:id", adminValidator.TargetUserID(), UpdateUser)
	return app
}

func TestApproveUserActivatesAccount(t *testing.T) {
	db := setupTestDB(t)
	user := createPendingStudent(t, db, "01012345678")
	app := usersApp()

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/admin/users/%d/approve", user.ID), nil)
	require.Equal(t, fiber.StatusOK, code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, models.StatusActive, updated.Status)

	// Approving an active account is a harmless no-op
	code, env := doJSON(t, app, "POST", fmt.Sprintf("/admin/users/%d/approve", user.ID), nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Account is already active.", env.Message)
}

func TestRejectUserRemovesAccount(t *testing.T) {
	db := setupTestDB(t)
	user := createPendingStudent(t, db, "01012345678")
	app := usersApp()

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/admin/users/%d/reject", user.ID), nil)
	require.Equal(t, fiber.StatusOK, code)

	// Hard delete: the row is gone even for unscoped reads
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateUserOnlyTouchesProvidedFields(t *testing.T) {
	db := setupTestDB(t)
	user := createPendingStudent(t, db, "01012345678")
	user.Governorate = "Cairo"
	require.NoError(t, db.Save(&user).Error)
	app := usersApp()

	code, _ := doJSON(t, app, "PUT", fmt.Sprintf("/admin/users/%d", user.ID), fiber.Map{
		"full_name": "Renamed Student Account",
		"status":    models.StatusActive,
	})
	require.Equal(t, fiber.StatusOK, code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "Renamed Student Account", updated.FullName)
	assert.Equal(t, models.StatusActive, updated.Status)
	assert.Equal(t, "Cairo", updated.Governorate)
	assert.Equal(t, "01012345678", updated.Phone)
	assert.Equal(t, "x", updated.PasswordHash) // untouched without a new password
}
