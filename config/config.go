package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Bootstrap admin account, created by the seeder only when no admin exists
	AdminPhone    string
	AdminPassword string

	// Media storage (Cloudinary-compatible upload API)
	MediaCloudName string
	MediaAPIKey    string
	MediaAPISecret string

	// Staging area for files awaiting upload to media storage
	TempUploadDir string

	// Minutes before an unfinished upload task is considered stuck
	UploadTaskTimeoutMin int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults.
// It is called once at process start; the resulting Config is never reloaded.
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AdminPhone:    getEnv("ADMIN_PHONE", "01000000000"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		MediaCloudName: getEnv("MEDIA_CLOUD_NAME", ""),
		MediaAPIKey:    getEnv("MEDIA_API_KEY", ""),
		MediaAPISecret: getEnv("MEDIA_API_SECRET", ""),

		TempUploadDir: getEnv("TEMP_UPLOAD_DIR", "./temp_uploads"),

		UploadTaskTimeoutMin: getEnvInt("UPLOAD_TASK_TIMEOUT_MIN", 60),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AdminPassword == "admin" {
		log.Println("Warning: Using default ADMIN_PASSWORD. Update it in your environment.")
	}
	if AppConfig.MediaCloudName == "" {
		log.Println("Warning: MEDIA_CLOUD_NAME is not set. File uploads will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
