package tags

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/internal/models"
)

var predefinedTags = []models.Tag{
	{Name: "technology", DisplayName: "Technology", IsPredefined: true},
	{Name: "finance", DisplayName: "Finance", IsPredefined: true},
	{Name: "lifestyle", DisplayName: "Lifestyle", IsPredefined: true},
	{Name: "others", DisplayName: "Others", IsPredefined: true},
}

// SeedPredefined upserts the predefined tag catalog. Runs once at startup,
// before the listener accepts connections; already-present tags are left
// untouched.
func SeedPredefined(db *gorm.DB) error {
	for _, seed := range predefinedTags {
		var existing models.Tag
		err := db.Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check predefined tag %q: %w", seed.Name, err)
		}

		tag := seed
		if err := db.Create(&tag).Error; err != nil {
			return fmt.Errorf("failed to create predefined tag %q: %w", seed.Name, err)
		}
	}
	return nil
}
