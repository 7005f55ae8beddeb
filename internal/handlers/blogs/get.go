package blogs

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// GET /api/admin/blogs/:id
func GetAdmin(c *fiber.Ctx) error {
	db := database.GetDatabase()

	blogID := c.Params("id")
	if blogID == "" {
		return response.BadRequest(c, "Blog ID is required")
	}

	var blog models.Blog
	if err := db.Preload("Images").Where("id = ?", blogID).First(&blog).Error; err != nil {
		return response.NotFound(c, "Blog not found")
	}

	return response.Success(c, "Blog retrieved successfully", blog)
}

// GET /api/blogs/:id
//
// Drafts are invisible here: a well-formed ID pointing at an unpublished
// post reads as not-found.
func GetPublished(c *fiber.Ctx) error {
	blogID := c.Params("id")
	if blogID == "" {
		return response.BadRequest(c, "Blog ID is required")
	}

	if payload, ok := cache.Get(c.Context(), cache.BlogKey(blogID)); ok {
		return response.Success(c, "Blog retrieved successfully", json.RawMessage(payload))
	}

	db := database.GetDatabase()

	var blog models.Blog
	if err := db.Preload("Images").
		Where("id = ? AND status = ?", blogID, models.BlogStatusPublished).
		First(&blog).Error; err != nil {
		return response.NotFound(c, "Blog not found")
	}

	if payload, err := json.Marshal(blog); err == nil {
		cache.Set(c.Context(), cache.BlogKey(blogID), string(payload))
	}

	return response.Success(c, "Blog retrieved successfully", blog)
}
