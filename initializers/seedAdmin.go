package initializers

import (
	"log"
	"os"

	"bistro-api/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial admin account so the first manager can be
// promoted through the roster endpoints.
func SeedAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("Skipping admin seed: ADMIN_USERNAME/ADMIN_PASSWORD not set.")
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.User{
		Username: username,
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
	}
}
