package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/pkg/utils"
)

type Tag struct {
	ID           string    `gorm:"primaryKey;size:191;column:id" json:"id"`
	Name         string    `gorm:"uniqueIndex;size:191;column:name" json:"name"`
	DisplayName  string    `gorm:"size:191;column:displayName" json:"displayName"`
	IsPredefined bool      `gorm:"column:isPredefined;default:false" json:"isPredefined"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;column:updatedAt" json:"updatedAt"`
}

func (Tag) TableName() string {
	return "Tag"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = utils.GenerateShortID()
	}
	return nil
}
