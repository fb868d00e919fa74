package courseController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"elearn/config"
	"elearn/database"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
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

// authAs stands in for the JWT middleware in handler tests.
func authAs(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
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

func createStudent(t *testing.T, db *gorm.DB, phone string) models.User {
	t.Helper()
	user := models.User{
		FullName:     "Test Student Account",
		Phone:        phone,
		PasswordHash: "x",
		Status:       models.StatusActive,
		Role:         models.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, title string, isPaid bool) models.Course {
	t.Helper()
	teacher := models.Teacher{Name: "Test Teacher"}
	require.NoError(t, db.Create(&teacher).Error)

	course := models.Course{
		Title:       title,
		IsPaid:      isPaid,
		Grade:       "3rd Secondary",
		SubjectName: "Physics",
		TeacherID:   teacher.ID,
	}
	if isPaid {
		course.Price = 150
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}
