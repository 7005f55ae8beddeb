package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/admin/comments/:id/status
//
// Any state can be set from any other: a rejected comment can go straight
// to approved and back.
func UpdateStatus(c *fiber.Ctx) error {
	db := database.GetDatabase()

	commentID := c.Params("id")
	if commentID == "" {
		return response.BadRequest(c, "Comment ID is required")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	status := models.CommentStatus(req.Status)
	if !status.Valid() {
		return response.BadRequest(c, "Status must be 'pending', 'approved', or 'rejected'")
	}

	var comment models.Comment
	if err := db.Where("id = ?", commentID).First(&comment).Error; err != nil {
		return response.NotFound(c, "Comment not found")
	}

	if err := db.Model(&comment).Update("status", status).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	var message string
	switch status {
	case models.CommentStatusApproved:
		message = "Comment approved successfully"
	case models.CommentStatusRejected:
		message = "Comment rejected successfully"
	case models.CommentStatusPending:
		message = "Comment updated successfully"
	}

	return response.Success(c, message, comment)
}
