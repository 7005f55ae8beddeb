package blogs

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/imagestore"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// UpdateBlogRequest is the patch shape: every field optional, only provided
// fields are validated and written.
type UpdateBlogRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Tag         *string `json:"tag"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Status      *string `json:"status"`
}

// PUT /api/admin/blogs/:id
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	blogID := c.Params("id")
	if blogID == "" {
		return response.BadRequest(c, "Blog ID is required")
	}

	var existing models.Blog
	if err := db.Where("id = ?", blogID).First(&existing).Error; err != nil {
		return response.NotFound(c, "Blog not found")
	}

	req, err := parseUpdateRequest(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		v := strings.TrimSpace(*req.Title)
		if v == "" {
			return response.BadRequest(c, "Title is required")
		}
		updates["title"] = v
	}
	if req.Subtitle != nil {
		updates["subtitle"] = strings.TrimSpace(*req.Subtitle)
	}
	if req.Tag != nil {
		v := strings.TrimSpace(*req.Tag)
		if v == "" {
			return response.BadRequest(c, "Tag is required")
		}
		updates["tag"] = v
	}
	if req.Description != nil {
		v := strings.TrimSpace(*req.Description)
		if v == "" {
			return response.BadRequest(c, "Description is required")
		}
		updates["description"] = v
	}
	if req.Content != nil {
		v := strings.TrimSpace(*req.Content)
		if v == "" {
			return response.BadRequest(c, "Content is required")
		}
		updates["content"] = v
	}
	if req.Status != nil {
		// Unlike creation, an unknown status here is dropped, not rejected.
		if s := models.BlogStatus(strings.TrimSpace(*req.Status)); s.Valid() {
			updates["status"] = s
		}
	}

	// A replacement thumbnail retires the old remote image first, best
	// effort: a failed remote delete is logged and the update proceeds.
	if thumb, err := c.FormFile("thumbnail"); err == nil && thumb != nil {
		if thumb.Size > maxFileSize {
			return response.BadRequest(c, "File size too large. Maximum size is 5MB")
		}
		if !isImage(thumb) {
			return response.BadRequest(c, errNotAnImage.Error())
		}

		result, err := uploadFile(thumb)
		if err != nil {
			log.Printf("Thumbnail upload error: %v", err)
			return response.InternalServerError(c, "Failed to upload thumbnail image")
		}

		if existing.ThumbnailID != "" {
			if err := imagestore.GetStore().Delete(existing.ThumbnailID); err != nil {
				log.Printf("Failed to delete old thumbnail %s: %v", existing.ThumbnailID, err)
			}
		}

		updates["thumbnailUrl"] = result.URL
		updates["thumbnailId"] = result.PublicID
	}

	if len(updates) > 0 {
		if err := db.Model(&models.Blog{}).Where("id = ?", blogID).Updates(updates).Error; err != nil {
			return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to update blog", err)
		}
	}

	var updated models.Blog
	db.Preload("Images").Where("id = ?", blogID).First(&updated)

	cache.Invalidate(c.Context(), cache.KeyPublishedBlogs, cache.BlogKey(blogID))

	return response.Success(c, "Blog updated successfully", updated)
}

// parseUpdateRequest reads the patch fields from a multipart form when one is
// present, falling back to a JSON body otherwise.
func parseUpdateRequest(c *fiber.Ctx) (*UpdateBlogRequest, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		var req UpdateBlogRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	req := &UpdateBlogRequest{}
	assign := func(key string, dst **string) {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			v := vs[0]
			*dst = &v
		}
	}
	assign("title", &req.Title)
	assign("subtitle", &req.Subtitle)
	assign("tag", &req.Tag)
	assign("description", &req.Description)
	assign("content", &req.Content)
	assign("status", &req.Status)
	return req, nil
}
