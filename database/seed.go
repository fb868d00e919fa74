package database

import (
	"elearn/config"
	"elearn/models"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedSubjects is the fixed list of subject categories inserted on first run.
var seedSubjects = []string{
	"Arabic",
	"English",
	"History",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Philosophy & Logic",
}

// Seed populates initial data. It is idempotent and safe to re-run: subjects
// are only inserted when the table is empty, and the default admin account is
// only created when no admin-role user exists yet.
func Seed(db *gorm.DB) error {
	if err := seedSubjectList(db); err != nil {
		return err
	}
	return seedAdminUser(db)
}

func seedSubjectList(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Subject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Subjects table is not empty, skipping seeding.")
		return nil
	}

	log.Println("Seeding subjects...")
	for _, name := range seedSubjects {
		if err := db.Create(&models.Subject{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Println("Subjects seeded successfully.")
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var admin models.User
	err := db.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		log.Println("Admin user already exists.")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	log.Println("Creating admin user...")
	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		return err
	}

	adminUser := models.User{
		FullName:     "Admin",
		Phone:        config.AppConfig.AdminPhone,
		PasswordHash: string(hashed),
		ParentPhone:  "000",
		Governorate:  "N/A",
		Grade:        "N/A",
		Status:       models.StatusActive,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Printf("Admin user created successfully. Phone (username): %s", adminUser.Phone)
	return nil
}
