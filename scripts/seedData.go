package main

import (
	"elearn/config"
	"elearn/database"
	"elearn/models"
	"log"
)

// One-shot initializer. Runs the same seed routine as server startup, then
// prints what the platform currently holds. Safe to run repeatedly.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	if err := database.Seed(database.Database.Db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	var subjects int64
	var admins int64
	database.Database.Db.Model(&models.Subject{}).Count(&subjects)
	database.Database.Db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins)

	log.Printf("=== Seed Complete ===")
	log.Printf("Subjects: %d", subjects)
	log.Printf("Admin accounts: %d", admins)
	log.Printf("Default admin phone: %s", config.AppConfig.AdminPhone)
}
