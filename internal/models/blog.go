package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/pkg/utils"
)

type Blog struct {
	ID           string      `gorm:"primaryKey;size:191;column:id" json:"id"`
	Title        string      `gorm:"size:191;column:title" json:"title"`
	Subtitle     string      `gorm:"size:191;column:subtitle" json:"subtitle"`
	Tag          string      `gorm:"size:191;column:tag" json:"tag"`
	ThumbnailURL string      `gorm:"size:512;column:thumbnailUrl" json:"thumbnailUrl"`
	ThumbnailID  string      `gorm:"size:191;column:thumbnailId" json:"thumbnailId"`
	Description  string      `gorm:"type:text;column:description" json:"description"`
	Content      string      `gorm:"type:longtext;column:content" json:"content"`
	Status       BlogStatus  `gorm:"size:20;column:status;default:draft" json:"status"`
	Images       []BlogImage `gorm:"foreignKey:BlogID" json:"images"`
	CreatedAt    time.Time   `gorm:"autoCreateTime;column:createdAt" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime;column:updatedAt" json:"updatedAt"`
}

func (Blog) TableName() string {
	return "Blog"
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = utils.GenerateShortID()
	}
	if b.Status == "" {
		b.Status = BlogStatusDraft
	}
	return nil
}

// BlogImage is one entry of a post's additional image gallery. The remote
// store owns the bytes; only the URL and the store's object key are kept.
type BlogImage struct {
	ID        string    `gorm:"primaryKey;size:191;column:id" json:"-"`
	BlogID    string    `gorm:"index;size:191;column:blogId" json:"-"`
	URL       string    `gorm:"size:512;column:url" json:"url"`
	PublicID  string    `gorm:"size:191;column:publicId" json:"publicId"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:createdAt" json:"-"`
}

func (BlogImage) TableName() string {
	return "BlogImage"
}

func (i *BlogImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = utils.GenerateShortID()
	}
	return nil
}
