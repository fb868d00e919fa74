package userController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"elearn/config"
	"elearn/database"
	"elearn/models"

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

func createActiveStudent(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		FullName: "Test Student Account", Phone: "01012345678", PasswordHash: "x",
		ParentPhone: "01000000001", Status: models.StatusActive, Role: models.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, string) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env.Message
}

func authAs(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
}

func TestTrackPageViewDropsEmptyEvents(t *testing.T) {
	db := setupTestDB(t)
	user := createActiveStudent(t, db)

	app := fiber.New()
	app.Post("/api/track-page-view", authAs(user.ID), TrackPageView)

	tests := []struct {
		name     string
		payload  fiber.Map
		wantRows int64
	}{
		{name: "zero duration dropped", payload: fiber.Map{"url": "/course/1", "duration": 0}, wantRows: 0},
		{name: "missing duration dropped", payload: fiber.Map{"url": "/course/1"}, wantRows: 0},
		{name: "empty url dropped", payload: fiber.Map{"url": "", "duration": 12}, wantRows: 0},
		{name: "real view recorded", payload: fiber.Map{"url": "/course/1", "duration": 12}, wantRows: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, db.Where("1 = 1").Delete(&models.PageViewLog{}).Error)

			code, _ := doJSON(t, app, "POST", "/api/track-page-view", tt.payload)
			require.Equal(t, fiber.StatusOK, code)

			var count int64
			require.NoError(t, db.Model(&models.PageViewLog{}).Count(&count).Error)
			assert.Equal(t, tt.wantRows, count)
		})
	}

	var entry models.PageViewLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "/course/1", entry.URL)
	assert.Equal(t, 12, entry.DurationSeconds)
	assert.Equal(t, user.ID, entry.UserID)
}

func TestUpdateProfileOwnFieldsOnly(t *testing.T) {
	db := setupTestDB(t)
	user := createActiveStudent(t, db)

	app := fiber.New()
	app.Put("/user/profile", authAs(user.ID), UpdateProfile)

	code, _ := doJSON(t, app, "PUT", "/user/profile", fiber.Map{
		"full_name":    "New Student Full Name",
		"parent_phone": "01099999999",
		"role":         models.RoleAdmin, // not a profile field, must be ignored
	})
	require.Equal(t, fiber.StatusOK, code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "New Student Full Name", updated.FullName)
	assert.Equal(t, "01099999999", updated.ParentPhone)
	assert.Equal(t, models.RoleStudent, updated.Role)
}
