// Command admin_seed creates the initial moderator account if one does
// not already exist. Safe to run repeatedly.
package main

import (
	"errors"
	"log"
	"os"

	"mynunny/internal/config"
	"mynunny/internal/models"
	"mynunny/internal/repositories"
	"mynunny/internal/services/auth"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@mynunny.com")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	var existing models.User
	err := repositories.DB.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), auth.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	username := "admin"
	admin := models.User{
		Email:    adminEmail,
		Username: &username,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		FullName: config.GetEnv("ADMIN_FULL_NAME", "MyNunny Admin"),
		Phone:    config.GetEnv("ADMIN_PHONE", "0000000000"),
		IDNumber: config.GetEnv("ADMIN_ID_NUMBER", "ADMIN-0001"),
		Verified: true,
	}

	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Admin account %s created", adminEmail)
}
