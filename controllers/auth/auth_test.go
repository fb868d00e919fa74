package authController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"elearn/config"
	"elearn/database"
	"elearn/models"
	authValidator "elearn/validators/auth"

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

func authApp() *fiber.App {
	app := fiber.New()
	app.Post("/auth/register", authValidator.Register(), Register)
	app.Post("/auth/login", authValidator.Login(), Login)
	return app
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func registerPayload() fiber.Map {
	return fiber.Map{
		"full_name":        "Ahmed Mohamed Hassan",
		"phone":            "01012345678",
		"password":         "secret123",
		"confirm_password": "secret123",
		"parent_phone":     "01087654321",
		"governorate":      "Cairo",
		"grade":            "3rd Secondary",
		"branch":           "Science",
	}
}

func TestRegisterCreatesPendingStudent(t *testing.T) {
	db := setupTestDB(t)
	app := authApp()

	code, env := doJSON(t, app, "POST", "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, code)
	assert.True(t, env.Status)

	var user models.User
	require.NoError(t, db.Where("phone = ?", "01012345678").First(&user).Error)
	assert.Equal(t, models.StatusPendingApproval, user.Status)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterValidation(t *testing.T) {
	setupTestDB(t)
	app := authApp()

	tests := []struct {
		name      string
		mutate    func(fiber.Map)
		wantField string
	}{
		{
			name:      "two word name rejected",
			mutate:    func(p fiber.Map) { p["full_name"] = "Ahmed Mohamed" },
			wantField: "full_name",
		},
		{
			name: "password mismatch",
			mutate: func(p fiber.Map) {
				p["confirm_password"] = "different"
			},
			wantField: "confirm_password",
		},
		{
			name:      "short password",
			mutate:    func(p fiber.Map) { p["password"] = "abc" },
			wantField: "password",
		},
		{
			name:      "missing governorate",
			mutate:    func(p fiber.Map) { delete(p, "governorate") },
			wantField: "governorate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := registerPayload()
			tt.mutate(payload)

			code, env := doJSON(t, app, "POST", "/auth/register", payload)
			require.Equal(t, fiber.StatusUnprocessableEntity, code)

			var fields map[string]string
			require.NoError(t, json.Unmarshal(env.Data, &fields))
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	setupTestDB(t)
	app := authApp()

	code, _ := doJSON(t, app, "POST", "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, code)

	code, env := doJSON(t, app, "POST", "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusUnprocessableEntity, code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "phone")
}

func TestLoginLifecycle(t *testing.T) {
	db := setupTestDB(t)
	app := authApp()

	code, _ := doJSON(t, app, "POST", "/auth/register", registerPayload())
	require.Equal(t, fiber.StatusCreated, code)

	credentials := fiber.Map{"phone": "01012345678", "password": "secret123"}

	// Pending accounts cannot log in yet
	code, env := doJSON(t, app, "POST", "/auth/login", credentials)
	require.Equal(t, fiber.StatusForbidden, code)
	assert.Contains(t, env.Message, "awaiting review")

	require.NoError(t, db.Model(&models.User{}).Where("phone = ?", "01012345678").
		Update("status", models.StatusActive).Error)

	code, env = doJSON(t, app, "POST", "/auth/login", credentials)
	require.Equal(t, fiber.StatusOK, code)

	var data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "01012345678", data.User.Phone)

	// Wrong password
	code, _ = doJSON(t, app, "POST", "/auth/login", fiber.Map{"phone": "01012345678", "password": "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
