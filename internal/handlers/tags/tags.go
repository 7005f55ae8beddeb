package tags

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// GET /api/admin/tags
func List(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var tags []models.Tag
	if err := db.Order("isPredefined DESC, displayName ASC").Find(&tags).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return response.Success(c, "Tags retrieved successfully", tags)
}

type CreateTagRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// POST /api/admin/tags
//
// Names are normalized to lowercase; the pre-check and the unique index
// both surface as the same "already exists" error.
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var req CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" {
		return response.BadRequest(c, "Tag name is required")
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))

	var existing models.Tag
	if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
		return response.BadRequest(c, "Tag already exists")
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = strings.TrimSpace(req.Name)
	}

	tag := models.Tag{
		Name:         name,
		DisplayName:  displayName,
		IsPredefined: false,
	}

	if err := db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.BadRequest(c, "Tag already exists")
		}
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return response.Created(c, "Tag created successfully", tag)
}

// DELETE /api/admin/tags/:id
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	tagID := c.Params("id")
	if tagID == "" {
		return response.BadRequest(c, "Tag ID is required")
	}

	var tag models.Tag
	if err := db.Where("id = ?", tagID).First(&tag).Error; err != nil {
		return response.NotFound(c, "Tag not found")
	}

	if tag.IsPredefined {
		return response.BadRequest(c, "Cannot delete predefined tags")
	}

	if err := db.Delete(&tag).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return response.Success(c, "Tag deleted successfully", nil)
}
