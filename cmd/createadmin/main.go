// Command createadmin bootstraps the single admin account. Run it once
// against a fresh database; it refuses to overwrite an existing admin.
package main

import (
	"errors"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/internal/config"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/utils"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "admin123", "admin password")
	flag.Parse()

	cfg := config.Load()

	if err := database.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
	db := database.GetDatabase()

	normalized := utils.NormalizeUsername(*username)

	var existing models.User
	err := db.Where("username = ?", normalized).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists!")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Username: normalized,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Println("Admin user created successfully!")
	log.Printf("Username: %s", normalized)
	log.Println("Change the default password after first login.")
}
