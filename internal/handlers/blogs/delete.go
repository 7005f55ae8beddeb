package blogs

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/imagestore"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// DELETE /api/admin/blogs/:id
//
// The database delete is the point of no return. Remote image cleanup runs
// after it and a cleanup failure is reported as a partial success: the
// record is gone either way.
func Delete(c *fiber.Ctx) error {
	db := database.GetDatabase()

	blogID := c.Params("id")
	if blogID == "" {
		return response.BadRequest(c, "Blog ID is required")
	}

	var blog models.Blog
	if err := db.Preload("Images").Where("id = ?", blogID).First(&blog).Error; err != nil {
		return response.NotFound(c, "Blog not found")
	}

	if err := db.Where("blogId = ?", blogID).Delete(&models.BlogImage{}).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to delete blog", err)
	}
	if err := db.Where("id = ?", blogID).Delete(&models.Blog{}).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to delete blog", err)
	}

	cache.Invalidate(c.Context(), cache.KeyPublishedBlogs, cache.BlogKey(blogID))

	var failed []string
	store := imagestore.GetStore()
	if blog.ThumbnailID != "" {
		if err := store.Delete(blog.ThumbnailID); err != nil {
			log.Printf("Failed to delete thumbnail %s: %v", blog.ThumbnailID, err)
			failed = append(failed, blog.ThumbnailID)
		}
	}
	for _, img := range blog.Images {
		if img.PublicID == "" {
			continue
		}
		if err := store.Delete(img.PublicID); err != nil {
			log.Printf("Failed to delete image %s: %v", img.PublicID, err)
			failed = append(failed, img.PublicID)
		}
	}

	if len(failed) > 0 {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError,
			"Blog deleted but remote image cleanup failed",
			fmt.Errorf("orphaned remote images: %s", strings.Join(failed, ", ")))
	}

	return response.Success(c, "Blog deleted successfully", nil)
}
