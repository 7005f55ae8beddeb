package blogs

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// GET /api/admin/blogs
func ListAdmin(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var blogs []models.Blog
	if err := db.Preload("Images").Order("createdAt DESC").Find(&blogs).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch blogs", err)
	}

	return response.Success(c, "Blogs retrieved successfully", blogs)
}

// GET /api/blogs
func ListPublished(c *fiber.Ctx) error {
	if payload, ok := cache.Get(c.Context(), cache.KeyPublishedBlogs); ok {
		return response.Success(c, "Blogs retrieved successfully", json.RawMessage(payload))
	}

	db := database.GetDatabase()

	var blogs []models.Blog
	if err := db.Preload("Images").
		Where("status = ?", models.BlogStatusPublished).
		Order("createdAt DESC").
		Find(&blogs).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch blogs", err)
	}

	if payload, err := json.Marshal(blogs); err == nil {
		cache.Set(c.Context(), cache.KeyPublishedBlogs, string(payload))
	}

	return response.Success(c, "Blogs retrieved successfully", blogs)
}
