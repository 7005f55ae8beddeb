package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/pkg/utils"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:191;column:id" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:191;column:username" json:"username"`
	Password  string    `gorm:"size:191;column:password" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updatedAt" json:"updatedAt"`
}

func (User) TableName() string {
	return "User"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = utils.GenerateShortID()
	}
	return nil
}
