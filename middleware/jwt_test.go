package middleware

import (
	"net/http/httptest"
	"testing"

	"elearn/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userID})
	})
	return app
}

func TestJWTMiddleware(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := protectedApp()

	token, err := GenerateJWT(42, "Test User Name", "student", "01012345678")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{name: "valid token", authHeader: "Bearer " + token, wantCode: fiber.StatusOK},
		{name: "missing header", authHeader: "", wantCode: fiber.StatusUnauthorized},
		{name: "not bearer", authHeader: token, wantCode: fiber.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not.a.token", wantCode: fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "original-secret"}
	token, err := GenerateJWT(7, "Test User Name", "student", "01012345678")
	require.NoError(t, err)

	// Key rotated after issuance: the old token must stop working
	config.AppConfig = &config.Config{JWTKey: "rotated-secret"}
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
