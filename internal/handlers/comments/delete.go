package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// DELETE /api/admin/comments/:id
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	commentID := c.Params("id")
	if commentID == "" {
		return response.BadRequest(c, "Comment ID is required")
	}

	var comment models.Comment
	if err := db.Where("id = ?", commentID).First(&comment).Error; err != nil {
		return response.NotFound(c, "Comment not found")
	}

	if err := db.Delete(&comment).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return response.Success(c, "Comment deleted successfully", nil)
}
