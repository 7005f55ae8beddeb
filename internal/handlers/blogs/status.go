package blogs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/admin/blogs/:id/status
//
// Both states are freely reachable from each other and re-applying the
// current state is a no-op success.
func UpdateStatus(c *fiber.Ctx) error {
	db := database.GetDatabase()

	blogID := c.Params("id")
	if blogID == "" {
		return response.BadRequest(c, "Blog ID is required")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	status := models.BlogStatus(req.Status)
	if !status.Valid() {
		return response.BadRequest(c, "Status must be 'published' or 'draft'")
	}

	var blog models.Blog
	if err := db.Where("id = ?", blogID).First(&blog).Error; err != nil {
		return response.NotFound(c, "Blog not found")
	}

	if err := db.Model(&blog).Update("status", status).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to update blog status", err)
	}

	cache.Invalidate(c.Context(), cache.KeyPublishedBlogs, cache.BlogKey(blogID))

	var message string
	switch status {
	case models.BlogStatusPublished:
		message = "Blog published successfully"
	case models.BlogStatusDraft:
		message = "Blog moved to draft"
	}

	return response.Success(c, message, blog)
}
