package database

import (
	"github.com/inkwell/inkwell/api/internal/models"
)

// Migrate brings the schema up to date for all application models.
func Migrate() error {
	return db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.BlogImage{},
		&models.Comment{},
		&models.Tag{},
	)
}
