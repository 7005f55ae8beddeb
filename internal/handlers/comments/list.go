package comments

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// GET /api/comments/blog/:blogId
//
// Public listing: only comments that cleared moderation.
func ListApproved(c *fiber.Ctx) error {
	db := database.GetDatabase()

	blogID := c.Params("blogId")
	if blogID == "" {
		return response.BadRequest(c, "Blog ID is required")
	}

	var comments []models.Comment
	if err := db.Where("blogId = ? AND status = ?", blogID, models.CommentStatusApproved).
		Order("createdAt DESC").
		Find(&comments).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return response.Success(c, "Comments retrieved successfully", comments)
}

// GET /api/admin/comments
//
// Moderation queue: every comment across every post and status, with the
// parent post's title resolved for display.
func ListAll(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var comments []models.Comment
	if err := db.Preload("Blog", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "title")
	}).Order("createdAt DESC").Find(&comments).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return response.Success(c, "Comments retrieved successfully", comments)
}
