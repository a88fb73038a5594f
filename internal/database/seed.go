package database

import (
	"log"

	"github.com/amorgan/brandhub/internal/models"
	"gorm.io/gorm"
)

// Seed populates the demo user the dashboard signs in as.
// Idempotent: skips if the user already exists.
func Seed(db *gorm.DB) error {
	var existing models.User
	result := db.Where("username = ?", "demouser").First(&existing)
	if result.Error == nil {
		log.Println("Seed data already exists, skipping")
		return nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	user := models.User{
		Username: "demouser",
		Password: "password123",
		Name:     "Alex Morgan",
		Email:    "alex@example.com",
		Plan:     "pro",
	}

	return db.Create(&user).Error
}
