package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/pkg/utils"
)

type Comment struct {
	ID        string        `gorm:"primaryKey;size:191;column:id" json:"id"`
	BlogID    string        `gorm:"index;size:191;column:blogId" json:"blogId"`
	Author    string        `gorm:"size:191;column:author;default:Anonymous" json:"author"`
	Content   string        `gorm:"type:text;column:content" json:"content"`
	Status    CommentStatus `gorm:"size:20;column:status;default:pending" json:"status"`
	Blog      *Blog         `gorm:"foreignKey:BlogID" json:"blog,omitempty"`
	CreatedAt time.Time     `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime;column:updatedAt" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "Comment"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = utils.GenerateShortID()
	}
	if c.Author == "" {
		c.Author = "Anonymous"
	}
	// Moderation always starts from scratch, whatever the caller sent.
	c.Status = CommentStatusPending
	return nil
}
